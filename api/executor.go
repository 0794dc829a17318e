package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Defaults applied by NewExecutor when the corresponding Config field
// is zero.
const (
	DefaultRequestsPerSecond = 10
	DefaultMaxAttempts       = 5
	DefaultRetryDelay        = 500 * time.Millisecond
)

// maxErrorBody caps how much of an error response body is captured
// into error details.
const maxErrorBody = 64 << 10

// TokenSource supplies bearer tokens for outbound requests. Any
// conforming implementation can be injected, which is how tests swap
// in doubles.
type TokenSource interface {
	// AccessToken returns a currently-valid bearer token.
	AccessToken(ctx context.Context) (string, error)
	// Headers returns the request headers carrying the token.
	Headers(ctx context.Context) (map[string]string, error)
}

// Request describes one logical API call. It is constructed per call
// and never persisted.
type Request struct {
	// Endpoint is the absolute URL to call.
	Endpoint string
	// Method is the HTTP verb; GET when empty.
	Method string
	// Body, when non-nil, is serialized to JSON. Schemas declare
	// optional fields as pointers with omitempty, so only fields the
	// caller populated are transmitted.
	Body any
	// Params are appended to the endpoint's query string.
	Params url.Values
	// Headers, when non-nil, are used verbatim and the token source is
	// bypassed entirely. Callers use this to disable auth for testing
	// or special endpoints.
	Headers map[string]string
}

// Config parameterizes an Executor per service instance. A single
// configured Executor replaces the per-service subclassing the vendor
// SDKs tend to grow.
type Config struct {
	HTTPClient        *http.Client
	Tokens            TokenSource
	RequestsPerSecond int
	MaxAttempts       int
	RetryDelay        time.Duration
	Logger            zerolog.Logger
}

// Executor performs rate-limited, authenticated requests with bounded
// retries. One Executor belongs to one service instance; its limiter
// state is never shared with another service, even within the same
// account.
type Executor struct {
	httpClient  *http.Client
	tokens      TokenSource
	rps         int
	maxAttempts int
	retryDelay  time.Duration
	logger      zerolog.Logger

	limiterOnce sync.Once
	limiter     *rate.Limiter
}

// NewExecutor creates an Executor, applying defaults for zero fields.
func NewExecutor(cfg Config) *Executor {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	return &Executor{
		httpClient:  cfg.HTTPClient,
		tokens:      cfg.Tokens,
		rps:         cfg.RequestsPerSecond,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		logger:      cfg.Logger,
	}
}

// Fetch executes one logical request end-to-end and decodes the JSON
// response into out (skipped when out is nil). Retryable failures are
// retried up to the configured attempt budget; when the budget runs
// out the last error is wrapped in a RetriesExhaustedError.
func (e *Executor) Fetch(ctx context.Context, req Request, out any) error {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		err := e.do(ctx, req, out)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
		e.logger.Debug().
			Err(err).
			Int("attempt", attempt).
			Str("endpoint", req.Endpoint).
			Msg("Retryable request failure")
		if attempt < e.maxAttempts {
			if werr := waitRetry(ctx, e.retryDelay); werr != nil {
				return werr
			}
		}
	}
	return &RetriesExhaustedError{Attempts: e.maxAttempts, Err: lastErr}
}

// do performs a single attempt: resolve headers, serialize the body,
// wait for a limiter slot, issue the call, classify failures.
func (e *Executor) do(ctx context.Context, req Request, out any) error {
	headers := req.Headers
	if headers == nil {
		h, err := e.tokens.Headers(ctx)
		if err != nil {
			return fmt.Errorf("resolving auth headers: %w", err)
		}
		headers = h
	}

	var body io.Reader
	if req.Body != nil {
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	if err := e.rateLimiter().Wait(ctx); err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Endpoint, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}
	if len(req.Params) > 0 {
		q := httpReq.URL.Query()
		for k, vs := range req.Params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		// Transport-level failure (DNS, connect, reset); retryable.
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp, req.Endpoint)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Endpoint: req.Endpoint, Err: err}
	}
	return nil
}

// statusError builds the typed error for an HTTP failure response.
// Body capture is best-effort: a capture failure must never mask the
// original error, so details stay empty in that case.
func statusError(resp *http.Response, endpoint string) *Error {
	details := map[string]string{}
	if body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
		details["response_body"] = string(body)
	}

	kind := ClassifyStatus(resp.StatusCode)
	return &Error{
		Kind:       kind,
		Message:    kind.message(),
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		Details:    details,
	}
}

// isRetryable decides whether a failed attempt may be retried: only
// auth-kind errors and transport-level connection failures qualify.
func isRetryable(err error) bool {
	var exhausted *RetriesExhaustedError
	if errors.As(err, &exhausted) {
		// A nested retry budget (the token exchange) already ran out;
		// do not unwrap into its transport cause.
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == KindAuth
	}
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// rateLimiter lazily constructs the per-instance token bucket: rps
// tokens per rolling second with an rps-sized burst.
func (e *Executor) rateLimiter() *rate.Limiter {
	e.limiterOnce.Do(func() {
		e.limiter = rate.NewLimiter(rate.Limit(e.rps), e.rps)
	})
	return e.limiter
}

func waitRetry(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
