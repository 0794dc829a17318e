// Package brightcove exposes the top-level client: one object holding
// the shared HTTP connection pool, the OAuth token cache and a lazy
// registry of per-service clients.
package brightcove

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/brightcove-go/analytics"
	"github.com/s0up4200/brightcove-go/api"
	"github.com/s0up4200/brightcove-go/cms"
	"github.com/s0up4200/brightcove-go/ingest"
	"github.com/s0up4200/brightcove-go/oauth"
	"github.com/s0up4200/brightcove-go/profiles"
	"github.com/s0up4200/brightcove-go/syndication"
)

// Vendor-documented API roots, used when the corresponding Config
// field is empty.
const (
	DefaultCMSBaseURL         = "https://cms.api.brightcove.com/v1/accounts/"
	DefaultSyndicationBaseURL = "https://edge.social.api.brightcove.com/v1/accounts/"
	DefaultAnalyticsBaseURL   = "https://analytics.api.brightcove.com/v1"
	DefaultIngestBaseURL      = "https://ingest.api.brightcove.com/v1/accounts/"
	DefaultProfilesBaseURL    = "https://ingestion.api.brightcove.com/v1/"
)

// Config holds everything needed to construct the client. Zero fields
// fall back to vendor defaults; only the credentials are required.
type Config struct {
	ClientID     string
	ClientSecret string

	CMSBaseURL         string
	SyndicationBaseURL string
	AnalyticsBaseURL   string
	IngestBaseURL      string
	ProfilesBaseURL    string

	// RequestsPerSecond bounds each general service instance; the
	// profiles service uses its own lower vendor ceiling.
	RequestsPerSecond         int
	ProfilesRequestsPerSecond int

	Logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient supplies an external HTTP client. Ownership stays
// with the caller: Close will not tear down its connection pool.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.ownsHTTP = false
	}
}

// WithTokenSource injects a token source, replacing the built-in
// OAuth client. Useful for test doubles.
func WithTokenSource(ts api.TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// Client is the top-level Brightcove client. Service accessors build
// each service on first use and return the same instance afterwards;
// construction is mutex-guarded so concurrent first access yields one
// instance per service.
type Client struct {
	cfg        Config
	httpClient *http.Client
	ownsHTTP   bool
	logger     zerolog.Logger

	mu       sync.Mutex
	tokens   api.TokenSource
	services map[string]any
}

// New creates a client. When no external HTTP client is supplied the
// client creates and owns a pooled one.
func New(cfg Config, opts ...Option) *Client {
	if cfg.CMSBaseURL == "" {
		cfg.CMSBaseURL = DefaultCMSBaseURL
	}
	if cfg.SyndicationBaseURL == "" {
		cfg.SyndicationBaseURL = DefaultSyndicationBaseURL
	}
	if cfg.AnalyticsBaseURL == "" {
		cfg.AnalyticsBaseURL = DefaultAnalyticsBaseURL
	}
	if cfg.IngestBaseURL == "" {
		cfg.IngestBaseURL = DefaultIngestBaseURL
	}
	if cfg.ProfilesBaseURL == "" {
		cfg.ProfilesBaseURL = DefaultProfilesBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = api.DefaultRequestsPerSecond
	}
	if cfg.ProfilesRequestsPerSecond <= 0 {
		cfg.ProfilesRequestsPerSecond = profiles.DefaultRequestsPerSecond
	}

	c := &Client{
		cfg:      cfg,
		logger:   cfg.Logger,
		ownsHTTP: true,
		services: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		}
	}
	return c
}

// TokenSource returns the shared token source, building the OAuth
// client on first use.
func (c *Client) TokenSource() api.TokenSource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokenSourceLocked()
}

func (c *Client) tokenSourceLocked() api.TokenSource {
	if c.tokens == nil {
		c.tokens = oauth.New(c.cfg.ClientID, c.cfg.ClientSecret, c.httpClient,
			oauth.WithLogger(c.logger))
	}
	return c.tokens
}

// CMS returns the CMS service client.
func (c *Client) CMS() *cms.Client {
	return service(c, "cms", func() *cms.Client {
		return cms.NewClient(c.executorLocked(c.cfg.RequestsPerSecond),
			c.cfg.CMSBaseURL, c.logger)
	})
}

// Analytics returns the Analytics service client.
func (c *Client) Analytics() *analytics.Client {
	return service(c, "analytics", func() *analytics.Client {
		return analytics.NewClient(c.executorLocked(c.cfg.RequestsPerSecond),
			c.cfg.AnalyticsBaseURL, c.logger)
	})
}

// Syndication returns the Syndication service client.
func (c *Client) Syndication() *syndication.Client {
	return service(c, "syndication", func() *syndication.Client {
		return syndication.NewClient(c.executorLocked(c.cfg.RequestsPerSecond),
			c.cfg.SyndicationBaseURL, c.logger)
	})
}

// Ingest returns the Dynamic Ingest service client.
func (c *Client) Ingest() *ingest.Client {
	return service(c, "ingest", func() *ingest.Client {
		return ingest.NewClient(c.executorLocked(c.cfg.RequestsPerSecond),
			c.cfg.IngestBaseURL, c.logger)
	})
}

// Profiles returns the Ingest Profiles service client.
func (c *Client) Profiles() *profiles.Client {
	return service(c, "profiles", func() *profiles.Client {
		return profiles.NewClient(c.executorLocked(c.cfg.ProfilesRequestsPerSecond),
			c.cfg.ProfilesBaseURL, c.logger)
	})
}

// Close releases the client: cached services and the token source are
// dropped, and the connection pool is torn down only when this client
// created it.
func (c *Client) Close() {
	c.mu.Lock()
	c.services = make(map[string]any)
	c.tokens = nil
	c.mu.Unlock()

	if c.ownsHTTP {
		c.httpClient.CloseIdleConnections()
	}
}

// executorLocked builds a per-service executor sharing the pooled
// HTTP client and token source. Callers hold c.mu.
func (c *Client) executorLocked(rps int) *api.Executor {
	return api.NewExecutor(api.Config{
		HTTPClient:        c.httpClient,
		Tokens:            c.tokenSourceLocked(),
		RequestsPerSecond: rps,
		Logger:            c.logger,
	})
}

// service returns the cached instance for name, constructing it under
// the registry lock on first access.
func service[T any](c *Client, name string, build func() T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.services[name]; ok {
		return s.(T)
	}
	s := build()
	c.services[name] = s
	return s
}
