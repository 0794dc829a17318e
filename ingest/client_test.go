package ingest

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

func TestIngestVideo(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/acc1/videos/v1/ingest-requests", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		body, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(IngestResponse{ID: "job-1"})
	}))
	defer server.Close()

	client := newTestClient(server)

	sourceURL := "https://example.com/source.mp4"
	profile := "multi-platform-standard-static"
	resp, err := client.IngestVideo(context.Background(), "acc1", "v1", IngestRequest{
		Master:  &Master{URL: &sourceURL},
		Profile: &profile,
	})
	require.NoError(t, err)
	assert.Equal(t, "job-1", resp.ID)
	assert.JSONEq(t,
		`{"master":{"url":"https://example.com/source.mp4"},"profile":"multi-platform-standard-static"}`,
		string(body))
}

func TestIngestVideo_EmptyRequestSendsEmptyObject(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(IngestResponse{ID: "job-2"})
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.IngestVideo(context.Background(), "acc1", "v1", IngestRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestGetTempUploadURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acc1/videos/v1/upload-urls/source.mp4", r.URL.Path)
		json.NewEncoder(w).Encode(S3URLs{
			Bucket:        "ingest-bucket",
			ObjectKey:     "acc1/v1/source.mp4",
			SignedURL:     "https://s3.example.com/signed",
			APIRequestURL: "https://s3.example.com/api",
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	urls, err := client.GetTempUploadURLs(context.Background(), "acc1", "v1", "source.mp4")
	require.NoError(t, err)
	assert.Equal(t, "ingest-bucket", urls.Bucket)
	assert.Equal(t, "https://s3.example.com/signed", urls.SignedURL)
	assert.Equal(t, "https://s3.example.com/api", urls.APIRequestURL)
}
