package biz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means a protected operation was attempted without an active session.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrAuthExpired means the session's access token was rejected upstream; the user must log in again.
	ErrAuthExpired = errors.New("access token expired")

	// ErrUpstreamUnavailable means an upstream did not answer (network failure, timeout, 5xx).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInvalidRequest means the caller's input failed validation.
	ErrInvalidRequest = errors.New("invalid request")
)

// UpstreamError is a non-2xx upstream response that is neither an auth
// failure nor an outage. Status and Body are kept for diagnostics.
type UpstreamError struct {
	Upstream string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Upstream, e.Status, e.Body)
}
