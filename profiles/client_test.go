package profiles

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/brightcove-go/api"
)

type fakeTokens struct{}

func (fakeTokens) AccessToken(ctx context.Context) (string, error) { return "test-token", nil }
func (fakeTokens) Headers(ctx context.Context) (map[string]string, error) {
	return map[string]string{"Authorization": "Bearer test-token"}, nil
}

func newTestClient(server *httptest.Server) *Client {
	exec := api.NewExecutor(api.Config{
		HTTPClient:        server.Client(),
		Tokens:            fakeTokens{},
		RequestsPerSecond: 100,
		Logger:            zerolog.Nop(),
	})
	return NewClient(exec, server.URL, zerolog.Nop())
}

func TestListProfiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc1/profiles", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]IngestProfile{
			{ID: "p1", Name: "multi-platform-standard-static"},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	list, err := client.ListProfiles(context.Background(), "acc1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "multi-platform-standard-static", list[0].Name)
}

func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc1/profiles/p1", r.URL.Path)
		json.NewEncoder(w).Encode(IngestProfile{ID: "p1", Name: "custom"})
	}))
	defer server.Close()

	client := newTestClient(server)

	profile, err := client.GetProfile(context.Background(), "acc1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "custom", profile.Name)
}

func TestCreateProfile_SendsOnlyPopulatedFields(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/acc1/profiles", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(IngestProfile{ID: "p-new", Name: "custom"})
	}))
	defer server.Close()

	client := newTestClient(server)

	profile, err := client.CreateProfile(context.Background(), "acc1", CreateProfileRequest{Name: "custom"})
	require.NoError(t, err)
	assert.Equal(t, "p-new", profile.ID)
	assert.JSONEq(t, `{"name":"custom"}`, string(body))
}

func TestDeleteProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/accounts/acc1/profiles/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server)
	assert.NoError(t, client.DeleteProfile(context.Background(), "acc1", "p1"))
}
