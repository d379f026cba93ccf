package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// LyricsHandler serves the generation routes. No session is involved;
// generation is stateless.
type LyricsHandler struct {
	service LyricsService
}

// NewLyricsHandler creates a LyricsHandler.
func NewLyricsHandler(service LyricsService) *LyricsHandler {
	return &LyricsHandler{service: service}
}

// RegisterRoutes registers the lyrics routes.
func (h *LyricsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/lyrics/generate", h.generate).Methods(http.MethodPost)
	r.HandleFunc("/lyrics/blend", h.blend).Methods(http.MethodPost)
	r.HandleFunc("/lyrics/test", h.test).Methods(http.MethodGet)
}

func (h *LyricsHandler) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateLyricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "invalid_request",
			"message": "invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *LyricsHandler) blend(w http.ResponseWriter, r *http.Request) {
	var req BlendLyricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "invalid_request",
			"message": "invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.service.Blend(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// test runs a canned generation, useful for checking provider wiring
// without the frontend.
func (h *LyricsHandler) test(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Generate(r.Context(), &GenerateLyricsRequest{
		Artist: "The 1975",
		Genre:  "pop",
		Theme:  "dating apps",
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
