package api

import (
	"encoding/json"
	"net/http"

	"lyrics-backend/internal/auth"
	"lyrics-backend/internal/conf"

	"github.com/gorilla/mux"
)

// SpotifyHandler serves the session-bound music data routes.
type SpotifyHandler struct {
	service SpotifyService
	cfg     conf.Spotify
}

// NewSpotifyHandler creates a SpotifyHandler.
func NewSpotifyHandler(service SpotifyService, cfg conf.Spotify) *SpotifyHandler {
	return &SpotifyHandler{
		service: service,
		cfg:     cfg,
	}
}

// RegisterRoutes registers the protected data routes. The router they are
// registered on must carry the session middleware.
func (h *SpotifyHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/profile", h.profile).Methods(http.MethodGet)
	r.HandleFunc("/top-artists", h.topArtists).Methods(http.MethodGet)
	r.HandleFunc("/recent", h.recentlyPlayed).Methods(http.MethodGet)
}

// RegisterPublicRoutes registers the routes that need no session.
func (h *SpotifyHandler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/spotify/debug-config", h.debugConfig).Methods(http.MethodGet)
}

func (h *SpotifyHandler) profile(w http.ResponseWriter, r *http.Request) {
	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		writeUnauthenticated(w)
		return
	}
	payload, err := h.service.Profile(r.Context(), session.AccessToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRawJSON(w, payload)
}

func (h *SpotifyHandler) topArtists(w http.ResponseWriter, r *http.Request) {
	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		writeUnauthenticated(w)
		return
	}
	payload, err := h.service.TopArtists(r.Context(), session.AccessToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRawJSON(w, payload)
}

func (h *SpotifyHandler) recentlyPlayed(w http.ResponseWriter, r *http.Request) {
	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		writeUnauthenticated(w)
		return
	}
	payload, err := h.service.RecentlyPlayed(r.Context(), session.AccessToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRawJSON(w, payload)
}

// debugConfig reports whether the OAuth client registration is populated.
// Secret values are redacted to presence markers; only the redirect URI is
// shown in the clear.
func (h *SpotifyHandler) debugConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"clientId":     presence(h.cfg.ClientID),
		"clientSecret": presence(h.cfg.ClientSecret),
		"redirectUri":  h.cfg.RedirectURL,
	})
}

func presence(value string) string {
	if value != "" {
		return "SET"
	}
	return "!!! NOT SET OR EMPTY !!!"
}

// writeRawJSON passes an upstream JSON payload through untouched.
func writeRawJSON(w http.ResponseWriter, payload json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func writeUnauthenticated(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error":   "unauthenticated",
		"message": "no active session",
	})
}
