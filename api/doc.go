// Package api implements the shared request engine used by every
// Brightcove service client.
//
// The package is organized into several components:
//
//   - Executor: issues authenticated, rate-limited HTTP requests with
//     bounded retries and typed JSON decoding
//   - Error: the status-mapped error taxonomy shared by all services
//   - TokenSource: the capability interface for bearer-token providers
//
// Service packages (cms, analytics, syndication, ingest, profiles) are
// thin callers: each method supplies an endpoint, a verb and a schema
// type and delegates everything else to an Executor.
//
// # Retry behavior
//
// A fetch is attempted up to MaxAttempts times (default 5). Only two
// failure classes are retried: authentication errors (the token may
// have just expired server-side) and transport-level connection
// failures. Every other classified error, and any decode failure, is
// returned immediately. When the attempt budget is consumed the last
// error is wrapped in a RetriesExhaustedError.
package api
