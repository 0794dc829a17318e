// Package syndication provides a client for the Brightcove Social
// Syndication API (MRSS feeds).
package syndication

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/brightcove-go/api"
)

// Syndication is one MRSS syndication feed definition.
type Syndication struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	IncludeAll    bool   `json:"include_all_content,omitempty"`
	IncludeFilter string `json:"include_filter,omitempty"`
	SyndicationID string `json:"syndication_id,omitempty"`
	DestinationID string `json:"destination_id,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	FeedURL       string `json:"url,omitempty"`
}

// CreateSyndicationRequest is the body for creating a feed. Only
// populated fields are transmitted.
type CreateSyndicationRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	IncludeAll    *bool   `json:"include_all_content,omitempty"`
	IncludeFilter *string `json:"include_filter,omitempty"`
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// Client wraps the Syndication API.
type Client struct {
	exec    *api.Executor
	baseURL string
	logger  zerolog.Logger
}

// NewClient creates a Syndication client. baseURL is the account-scoped
// root, e.g. https://edge.social.api.brightcove.com/v1/accounts/.
func NewClient(exec *api.Executor, baseURL string, logger zerolog.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{exec: exec, baseURL: baseURL, logger: logger}
}

// ListSyndications lists all syndication feeds for an account.
func (c *Client) ListSyndications(ctx context.Context, accountID string) ([]Syndication, error) {
	var feeds []Syndication
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/mrss/syndications",
	}, &feeds)
	if err != nil {
		return nil, err
	}
	return feeds, nil
}

// GetSyndication returns one syndication feed.
func (c *Client) GetSyndication(ctx context.Context, accountID, syndicationID string) (*Syndication, error) {
	var feed Syndication
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/mrss/syndications/" + syndicationID,
	}, &feed)
	if err != nil {
		return nil, err
	}
	return &feed, nil
}

// CreateSyndication creates a syndication feed.
func (c *Client) CreateSyndication(ctx context.Context, accountID string, req CreateSyndicationRequest) (*Syndication, error) {
	var feed Syndication
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/mrss/syndications",
		Method:   http.MethodPost,
		Body:     req,
	}, &feed)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("syndication_id", feed.ID).Msg("Created syndication feed")
	return &feed, nil
}

// DeleteSyndication removes a syndication feed.
func (c *Client) DeleteSyndication(ctx context.Context, accountID, syndicationID string) error {
	return c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/mrss/syndications/" + syndicationID,
		Method:   http.MethodDelete,
	}, nil)
}
