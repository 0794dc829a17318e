package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/brightcove-go/api"
)

func tokenHandler(t *testing.T, calls *int, token string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "token exchange must use HTTP Basic auth")
		assert.Equal(t, "test-id", user)
		assert.Equal(t, "test-secret", pass)

		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   300,
		})
	}
}

func TestAccessToken_FetchesAndCaches(t *testing.T) {
	var calls int
	server := httptest.NewServer(tokenHandler(t, &calls, "tok-1"))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	token, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, calls)

	// Within the lifetime the cached token is reused without a call.
	token, err = c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, calls)
}

func TestAccessToken_LifetimeBoundary(t *testing.T) {
	var calls int
	server := httptest.NewServer(tokenHandler(t, &calls, "tok"))
	defer server.Close()

	now := time.Now()
	c := New("test-id", "test-secret", server.Client(),
		WithTokenURL(server.URL),
		withClock(func() time.Time { return now }))

	_, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	// Just under the lifetime: still cached.
	now = now.Add(DefaultTokenLifetime - time.Second)
	_, err = c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// At the lifetime exactly: the strict check forces a refresh.
	now = now.Add(time.Second)
	_, err = c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestAccessToken_MissingTokenIsFatal(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	}))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	_, err := c.AccessToken(context.Background())
	require.ErrorIs(t, err, ErrMissingToken)
	assert.Equal(t, 1, calls, "a malformed success is never retried")
}

func TestAccessToken_HTTPErrorIsFatal(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	_, err := c.AccessToken(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindAuth, apiErr.Kind)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestAccessToken_ConnectionFailureRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-2"})
	}))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	token, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, 2, calls)
}

func TestAccessToken_ConnectionFailureExhaustsBudget(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		conn, _, err := w.(http.Hijacker).Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	_, err := c.AccessToken(context.Background())
	require.Error(t, err)
	assert.Equal(t, exchangeMaxAttempts, calls)

	var exhausted *api.RetriesExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, exchangeMaxAttempts, exhausted.Attempts)
}

func TestInvalidate(t *testing.T) {
	var calls int
	server := httptest.NewServer(tokenHandler(t, &calls, "tok"))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	_, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	c.Invalidate()

	_, err = c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestHeaders(t *testing.T) {
	var calls int
	server := httptest.NewServer(tokenHandler(t, &calls, "tok-h"))
	defer server.Close()

	c := New("test-id", "test-secret", server.Client(), WithTokenURL(server.URL))

	headers, err := c.Headers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer tok-h",
		"Content-Type":  "application/json",
	}, headers)
}
