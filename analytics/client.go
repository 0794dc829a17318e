package analytics

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/brightcove-go/api"
)

// batchConcurrency bounds the fan-out of BatchVideoEngagement. The
// per-service rate limiter still governs actual request admission.
const batchConcurrency = 10

// Client wraps the Brightcove Analytics API.
type Client struct {
	exec    *api.Executor
	baseURL string
	logger  zerolog.Logger
}

// NewClient creates an Analytics client. baseURL is the analytics API
// root, e.g. https://analytics.api.brightcove.com/v1.
func NewClient(exec *api.Executor, baseURL string, logger zerolog.Logger) *Client {
	return &Client{exec: exec, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// AccountEngagement returns the account-level engagement timeline.
func (c *Client) AccountEngagement(ctx context.Context, accountID string) (*Timeline, error) {
	var timeline Timeline
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "/engagement/accounts/" + accountID,
	}, &timeline)
	if err != nil {
		return nil, err
	}
	return &timeline, nil
}

// PlayerEngagement returns the engagement timeline for one player.
func (c *Client) PlayerEngagement(ctx context.Context, accountID, playerID string) (*Timeline, error) {
	var timeline Timeline
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "/engagement/accounts/" + accountID + "/players/" + playerID,
	}, &timeline)
	if err != nil {
		return nil, err
	}
	return &timeline, nil
}

// VideoEngagement returns the engagement timeline for one video.
func (c *Client) VideoEngagement(ctx context.Context, accountID, videoID string) (*TimelineWithDuration, error) {
	var timeline TimelineWithDuration
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "/engagement/accounts/" + accountID + "/videos/" + videoID,
	}, &timeline)
	if err != nil {
		return nil, err
	}
	return &timeline, nil
}

// GetReport runs an analytics report. params carries the reporting
// query surface (accounts, dimensions, fields, where, from, to).
func (c *Client) GetReport(ctx context.Context, params url.Values) (*Report, error) {
	var report Report
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "/data",
		Params:   params,
	}, &report)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Int("items", report.ItemCount).Msg("Retrieved analytics report")
	return &report, nil
}

// AvailableDateRange reports the span of reconciled and realtime data
// available for the given report query.
func (c *Client) AvailableDateRange(ctx context.Context, params url.Values) (*DateRange, error) {
	var dr DateRange
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + "/data/status",
		Params:   params,
	}, &dr)
	if err != nil {
		return nil, err
	}
	return &dr, nil
}

// BatchVideoEngagement fetches engagement timelines for many videos
// concurrently. Videos whose lookup fails are logged and skipped; the
// batch only fails when the context is canceled.
func (c *Client) BatchVideoEngagement(ctx context.Context, accountID string, videoIDs []string) ([]VideoEngagement, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	var mu sync.Mutex
	results := make([]VideoEngagement, 0, len(videoIDs))

	for _, id := range videoIDs {
		g.Go(func() error {
			engagement, err := c.VideoEngagement(ctx, accountID, id)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Warn().Err(err).Str("video_id", id).
					Msg("Failed to get video engagement")
				return nil
			}
			mu.Lock()
			results = append(results, VideoEngagement{VideoID: id, Engagement: engagement})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
