// Package oauth manages Brightcove OAuth client-credentials tokens.
//
// Brightcove bearer tokens live for 300 seconds; the client caches
// each token for 240 seconds and refreshes before the vendor-side
// expiry can bite. Connection failures during the exchange are retried
// a bounded number of times, but a well-formed response missing the
// access token fails immediately — the exchange worked at the
// transport level and retrying would not change the answer.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/s0up4200/brightcove-go/api"
)

// DefaultTokenURL is the Brightcove OAuth token endpoint.
const DefaultTokenURL = "https://oauth.brightcove.com/v4/access_token"

// DefaultTokenLifetime is how long a fetched token is reused before a
// refresh. The check is strict: a token aged exactly at the lifetime
// is refreshed, not reused.
const DefaultTokenLifetime = 240 * time.Second

const (
	exchangeMaxAttempts = 3
	exchangeRetryDelay  = 500 * time.Millisecond
)

// ErrMissingToken indicates the token endpoint answered successfully
// but the response carried no access token. This is a vendor-side
// malformation, never retried.
var ErrMissingToken = errors.New("oauth: access token missing from response")

// Client exchanges and caches bearer tokens. It implements
// api.TokenSource. The zero value is not usable; construct with New.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	lifetime     time.Duration
	httpClient   *http.Client
	logger       zerolog.Logger

	now func() time.Time

	mu        sync.Mutex
	token     string
	fetchedAt time.Time

	group singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithTokenURL overrides the OAuth token endpoint.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithLifetime overrides the cached token lifetime.
func WithLifetime(d time.Duration) Option {
	return func(c *Client) { c.lifetime = d }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// withClock overrides the time source; used by tests to age tokens.
func withClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates an OAuth client sharing the given HTTP client. The
// client secret is held privately and never appears in logs or error
// detail.
func New(clientID, clientSecret string, httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     DefaultTokenURL,
		lifetime:     DefaultTokenLifetime,
		httpClient:   httpClient,
		logger:       zerolog.Nop(),
		now:          time.Now,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessToken returns the cached token while it is younger than the
// configured lifetime, refreshing it otherwise. Concurrent callers
// hitting an expired token share a single refresh.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Sub(c.fetchedAt) < c.lifetime {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("token", func() (any, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Headers returns the auth headers for an outbound API request.
func (c *Client) Headers(ctx context.Context) (map[string]string, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}, nil
}

// Invalidate drops the cached token so the next request refreshes.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// refresh performs the client-credentials exchange, retrying
// connection failures up to the bounded attempt count.
func (c *Client) refresh(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= exchangeMaxAttempts; attempt++ {
		token, err := c.exchange(ctx)
		if err == nil {
			c.mu.Lock()
			c.token = token
			c.fetchedAt = c.now()
			c.mu.Unlock()
			c.logger.Debug().Msg("Fetched new access token")
			return token, nil
		}
		var urlErr *url.Error
		if !errors.As(err, &urlErr) {
			// Malformed response or HTTP error status: not retried here.
			return "", err
		}
		lastErr = err
		c.logger.Debug().Err(err).Int("attempt", attempt).Msg("Token exchange connection failure")
		if attempt < exchangeMaxAttempts {
			t := time.NewTimer(exchangeRetryDelay)
			select {
			case <-ctx.Done():
				t.Stop()
				return "", ctx.Err()
			case <-t.C:
			}
		}
	}
	return "", &api.RetriesExhaustedError{Attempts: exchangeMaxAttempts, Err: lastErr}
}

// exchange performs one POST to the token endpoint: HTTP Basic auth
// with the client credentials and a form-encoded grant_type body.
func (c *Client) exchange(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		kind := api.ClassifyStatus(resp.StatusCode)
		return "", &api.Error{
			Kind:       kind,
			Message:    "token exchange failed",
			StatusCode: resp.StatusCode,
			Endpoint:   c.tokenURL,
		}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", ErrMissingToken
	}
	return payload.AccessToken, nil
}
