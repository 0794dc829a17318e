// Package profiles provides a client for the Brightcove Ingest
// Profiles API.
//
// The vendor documents a lower rate ceiling for this API than for the
// general services, so profile clients default to 4 requests per
// second instead of 10.
package profiles

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/brightcove-go/api"
)

// DefaultRequestsPerSecond is the vendor-documented ceiling for the
// Ingest Profiles API.
const DefaultRequestsPerSecond = 4

// Client wraps the Ingest Profiles API.
type Client struct {
	exec    *api.Executor
	baseURL string
	logger  zerolog.Logger
}

// NewClient creates an Ingest Profiles client. baseURL is the API
// root, e.g. https://ingestion.api.brightcove.com/v1/.
func NewClient(exec *api.Executor, baseURL string, logger zerolog.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{exec: exec, baseURL: baseURL, logger: logger}
}

// ListProfiles lists the account's ingest profiles.
func (c *Client) ListProfiles(ctx context.Context, accountID string) ([]IngestProfile, error) {
	var list []IngestProfile
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "accounts/" + accountID + "/profiles",
	}, &list)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Int("count", len(list)).Msg("Retrieved ingest profiles")
	return list, nil
}

// GetProfile returns one ingest profile by ID or name.
func (c *Client) GetProfile(ctx context.Context, accountID, profileID string) (*IngestProfile, error) {
	var profile IngestProfile
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "accounts/" + accountID + "/profiles/" + profileID,
	}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile creates an ingest profile.
func (c *Client) CreateProfile(ctx context.Context, accountID string, req CreateProfileRequest) (*IngestProfile, error) {
	var profile IngestProfile
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "accounts/" + accountID + "/profiles",
		Method:   http.MethodPost,
		Body:     req,
	}, &profile)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("profile_id", profile.ID).Msg("Created ingest profile")
	return &profile, nil
}

// DeleteProfile removes an ingest profile.
func (c *Client) DeleteProfile(ctx context.Context, accountID, profileID string) error {
	return c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "accounts/" + accountID + "/profiles/" + profileID,
		Method:   http.MethodDelete,
	}, nil)
}
