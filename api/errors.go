package api

import (
	"fmt"
	"strings"
)

// Kind identifies one class of API failure. Every HTTP error status
// maps to exactly one Kind; KindUnknown covers server-side errors and
// anything the vendor has not documented.
type Kind string

const (
	KindBadValue         Kind = "bad_value"
	KindAuth             Kind = "auth"
	KindResourceNotFound Kind = "resource_not_found"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindConflict         Kind = "conflict"
	KindTooManyRequests  Kind = "too_many_requests"
	KindIllegalField     Kind = "illegal_field"
	KindReferenceInUse   Kind = "reference_in_use"
	KindUnknown          Kind = "unknown"
)

// ClassifyStatus maps an HTTP status code to its error kind.
func ClassifyStatus(status int) Kind {
	switch status {
	case 400:
		return KindBadValue
	case 401:
		return KindAuth
	case 404:
		return KindResourceNotFound
	case 405:
		return KindMethodNotAllowed
	case 409:
		return KindConflict
	case 429:
		return KindTooManyRequests
	default:
		return KindUnknown
	}
}

// IsClient reports whether the kind belongs to the client-error family.
// KindIllegalField and KindReferenceInUse are vendor-specific client
// errors that are not reachable through status mapping.
func (k Kind) IsClient() bool {
	switch k {
	case KindBadValue, KindAuth, KindResourceNotFound, KindMethodNotAllowed,
		KindConflict, KindTooManyRequests, KindIllegalField, KindReferenceInUse:
		return true
	}
	return false
}

// IsServer reports whether the kind belongs to the server-error family.
func (k Kind) IsServer() bool {
	return k == KindUnknown
}

func (k Kind) message() string {
	switch k {
	case KindBadValue:
		return "invalid request value"
	case KindAuth:
		return "authentication failed"
	case KindResourceNotFound:
		return "resource not found"
	case KindMethodNotAllowed:
		return "method not allowed"
	case KindConflict:
		return "request conflict"
	case KindTooManyRequests:
		return "too many requests"
	case KindIllegalField:
		return "illegal field in request"
	case KindReferenceInUse:
		return "reference in use"
	default:
		return "unknown API error"
	}
}

// Error is the status-mapped error returned for HTTP failure responses.
// It carries everything needed to diagnose the call: the classified
// kind, the originating status code and endpoint, and a details map
// holding the captured response body when it could be read.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Endpoint   string
	Details    map[string]string
	Cause      error
}

// Error renders all present fields in a stable, greppable format.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " status_code=%d", e.StatusCode)
	}
	if e.Endpoint != "" {
		fmt.Fprintf(&b, " endpoint='%s'", e.Endpoint)
	}
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, " details=%v", e.Details)
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same kind, so callers can write
// errors.Is(err, &api.Error{Kind: api.KindResourceNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// RetriesExhaustedError is returned when the bounded retry budget is
// consumed while the failure is still retryable. It wraps the error
// from the final attempt.
type RetriesExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a success response body does not
// deserialize into the requested schema. It is never retried.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
