package auth

import (
	"context"
	"errors"
)

type contextKey string

const (
	// SessionContextKey is the context key for the authenticated session.
	SessionContextKey contextKey = "authenticated_session"
)

var (
	// ErrNoSessionInContext is returned when no session is found in context.
	ErrNoSessionInContext = errors.New("no authenticated session in context")
)

// GetSessionFromContext extracts the authenticated session from the request context.
func GetSessionFromContext(ctx context.Context) (*Session, error) {
	val := ctx.Value(SessionContextKey)
	if val == nil {
		return nil, ErrNoSessionInContext
	}

	session, ok := val.(*Session)
	if !ok {
		return nil, ErrNoSessionInContext
	}

	return session, nil
}
