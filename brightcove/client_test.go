package brightcove

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/brightcove-go/api"
	"github.com/s0up4200/brightcove-go/oauth"
)

type fakeTokens struct{}

func (fakeTokens) AccessToken(ctx context.Context) (string, error) { return "test-token", nil }
func (fakeTokens) Headers(ctx context.Context) (map[string]string, error) {
	return map[string]string{"Authorization": "Bearer test-token"}, nil
}

func TestNew_AppliesDefaults(t *testing.T) {
	c := New(Config{ClientID: "id", ClientSecret: "secret"})
	defer c.Close()

	assert.Equal(t, DefaultCMSBaseURL, c.cfg.CMSBaseURL)
	assert.Equal(t, DefaultSyndicationBaseURL, c.cfg.SyndicationBaseURL)
	assert.Equal(t, DefaultAnalyticsBaseURL, c.cfg.AnalyticsBaseURL)
	assert.Equal(t, DefaultIngestBaseURL, c.cfg.IngestBaseURL)
	assert.Equal(t, DefaultProfilesBaseURL, c.cfg.ProfilesBaseURL)
	assert.Equal(t, api.DefaultRequestsPerSecond, c.cfg.RequestsPerSecond)
	assert.NotNil(t, c.httpClient)
	assert.True(t, c.ownsHTTP)
}

func TestServiceAccessorsReturnSingletons(t *testing.T) {
	c := New(Config{ClientID: "id", ClientSecret: "secret"},
		WithTokenSource(fakeTokens{}))
	defer c.Close()

	assert.Same(t, c.CMS(), c.CMS())
	assert.Same(t, c.Analytics(), c.Analytics())
	assert.Same(t, c.Syndication(), c.Syndication())
	assert.Same(t, c.Ingest(), c.Ingest())
	assert.Same(t, c.Profiles(), c.Profiles())
}

func TestServiceAccessorsConcurrentFirstUse(t *testing.T) {
	c := New(Config{ClientID: "id", ClientSecret: "secret"},
		WithTokenSource(fakeTokens{}))
	defer c.Close()

	const goroutines = 16
	results := make([]any, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.CMS()
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestTokenSourceDefaultsToOAuth(t *testing.T) {
	c := New(Config{ClientID: "id", ClientSecret: "secret"})
	defer c.Close()

	_, ok := c.TokenSource().(*oauth.Client)
	assert.True(t, ok)

	// Stable across calls.
	assert.Same(t, c.TokenSource().(*oauth.Client), c.TokenSource().(*oauth.Client))
}

func TestWithTokenSource(t *testing.T) {
	ts := fakeTokens{}
	c := New(Config{ClientID: "id", ClientSecret: "secret"}, WithTokenSource(ts))
	defer c.Close()

	assert.Equal(t, ts, c.TokenSource())
}

func TestClose_ResetsServicesAndTokens(t *testing.T) {
	c := New(Config{ClientID: "id", ClientSecret: "secret"},
		WithTokenSource(fakeTokens{}))

	first := c.CMS()
	c.Close()

	// A closed client rebuilds services (and its token source) on the
	// next access.
	assert.NotSame(t, first, c.CMS())
}

func TestWithHTTPClient_OwnershipStaysWithCaller(t *testing.T) {
	hc := &http.Client{}
	c := New(Config{ClientID: "id", ClientSecret: "secret"}, WithHTTPClient(hc))

	assert.Same(t, hc, c.httpClient)
	assert.False(t, c.ownsHTTP)
	c.Close()
}
