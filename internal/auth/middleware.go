package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "lyrics_session"
)

// Middleware guards protected routes: a request without an active session
// is rejected with 401 (never redirected). The session is put into the
// request context for the handlers behind it.
//
// Supports both cookie-based (Web) and header-based (SPA/Mobile) auth.
func (s *SessionStore) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := extractSessionID(r)
			if sessionID == "" {
				writeUnauthorized(w, "missing session")
				return
			}

			session, ok := s.Get(sessionID)
			if !ok {
				writeUnauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractSessionID extracts the session ID from cookie or Authorization header.
func extractSessionID(r *http.Request) string {
	// 1. Try cookie first (for Web applications)
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	// 2. Try Authorization header (for SPA/Mobile applications)
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Support "Bearer <session id>" format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthenticated",
		"message": message,
	})
}
