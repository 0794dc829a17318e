// Package ingest provides a client for the Brightcove Dynamic Ingest
// API: submitting videos, images and text tracks for processing, and
// requesting temporary S3 upload URLs for source files.
package ingest

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/brightcove-go/api"
)

// Client wraps the Dynamic Ingest API.
type Client struct {
	exec    *api.Executor
	baseURL string
	logger  zerolog.Logger
}

// NewClient creates a Dynamic Ingest client. baseURL is the
// account-scoped root, e.g. https://ingest.api.brightcove.com/v1/accounts/.
func NewClient(exec *api.Executor, baseURL string, logger zerolog.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{exec: exec, baseURL: baseURL, logger: logger}
}

// IngestVideo submits a video (or additional assets for an existing
// video) for ingestion and returns the ingest job ID.
func (c *Client) IngestVideo(ctx context.Context, accountID, videoID string, req IngestRequest) (*IngestResponse, error) {
	var resp IngestResponse
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID + "/ingest-requests",
		Method:   http.MethodPost,
		Body:     req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("job_id", resp.ID).Str("video_id", videoID).Msg("Submitted ingest request")
	return &resp, nil
}

// GetTempUploadURLs requests temporary S3 URLs for pushing a source
// file, used for source-file upload before an ingest request.
func (c *Client) GetTempUploadURLs(ctx context.Context, accountID, videoID, sourceName string) (*S3URLs, error) {
	var urls S3URLs
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID + "/upload-urls/" + sourceName,
	}, &urls)
	if err != nil {
		return nil, err
	}
	return &urls, nil
}
