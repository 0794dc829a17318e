package syndication

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

func TestListSyndications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acc1/mrss/syndications", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]Syndication{
			{ID: "s1", Name: "universal feed", Type: "universal"},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	feeds, err := client.ListSyndications(context.Background(), "acc1")
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "universal feed", feeds[0].Name)
}

func TestGetSyndication(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acc1/mrss/syndications/s1", r.URL.Path)
		json.NewEncoder(w).Encode(Syndication{ID: "s1", Name: "feed", Type: "google"})
	}))
	defer server.Close()

	client := newTestClient(server)

	feed, err := client.GetSyndication(context.Background(), "acc1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "google", feed.Type)
}

func TestCreateSyndication(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/acc1/mrss/syndications", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(Syndication{ID: "s-new", Name: "new feed", Type: "universal"})
	}))
	defer server.Close()

	client := newTestClient(server)

	feed, err := client.CreateSyndication(context.Background(), "acc1", CreateSyndicationRequest{
		Name: "new feed",
		Type: "universal",
	})
	require.NoError(t, err)
	assert.Equal(t, "s-new", feed.ID)
	assert.JSONEq(t, `{"name":"new feed","type":"universal"}`, string(body))
}

func TestDeleteSyndication(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/acc1/mrss/syndications/s1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server)
	assert.NoError(t, client.DeleteSyndication(context.Background(), "acc1", "s1"))
}
