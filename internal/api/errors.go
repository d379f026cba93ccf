package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"lyrics-backend/internal/biz"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps the error taxonomy onto response status codes. Upstream
// failures keep the upstream's status and body in the response for diagnosis.
func writeError(w http.ResponseWriter, err error) {
	var upstreamErr *biz.UpstreamError
	switch {
	case errors.Is(err, biz.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	case errors.Is(err, biz.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "unauthenticated",
			"message": err.Error(),
		})
	case errors.Is(err, biz.ErrAuthExpired):
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "auth_expired",
			"message": "access token expired, log in again",
		})
	case errors.Is(err, biz.ErrUpstreamUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "upstream_unavailable",
			"message": err.Error(),
		})
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":           "upstream_error",
			"message":         "upstream request failed",
			"upstream":        upstreamErr.Upstream,
			"upstream_status": upstreamErr.Status,
			"upstream_body":   upstreamErr.Body,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "internal",
			"message": err.Error(),
		})
	}
}
