package api

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"lyrics-backend/internal/auth"

	"github.com/gorilla/mux"
)

// stateTTL bounds how long a login may sit between redirect and callback.
const stateTTL = 10 * time.Minute

// AuthHandler handles the interactive login flow: redirect to Spotify,
// exchange the callback code, bind the resulting token to a session.
type AuthHandler struct {
	authClient *auth.Client
	sessions   *auth.SessionStore
	spotify    SpotifyService
	stateStore *StateStore
	successURL string
	failureURL string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authClient *auth.Client, sessions *auth.SessionStore, spotify SpotifyService, successURL, failureURL string) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
		sessions:   sessions,
		spotify:    spotify,
		stateStore: NewStateStore(),
		successURL: successURL,
		failureURL: failureURL,
	}
}

// RegisterRoutes registers the auth routes.
func (h *AuthHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/login", h.login).Methods(http.MethodGet)
	r.HandleFunc("/callback", h.callback).Methods(http.MethodGet)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)
}

// login redirects the browser to the Spotify authorization endpoint.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	// CSRF state, consumed exactly once by the callback
	state := generateState()
	h.stateStore.Save(state, stateTTL)

	http.Redirect(w, r, h.authClient.AuthCodeURL(state), http.StatusFound)
}

// callback finishes the authorization-code flow. Provider errors, bad state
// and failed exchanges all land on the configured failure URL; this is the
// interactive flow, so the browser gets a redirect rather than a status code.
func (h *AuthHandler) callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("error") != "" {
		http.Redirect(w, r, h.failureURL, http.StatusFound)
		return
	}

	// One-time use: a replayed callback fails here even with a valid code.
	if !h.stateStore.Verify(query.Get("state")) {
		http.Redirect(w, r, h.failureURL, http.StatusFound)
		return
	}

	code := query.Get("code")
	if code == "" {
		http.Redirect(w, r, h.failureURL, http.StatusFound)
		return
	}

	token, err := h.authClient.Exchange(r.Context(), code)
	if err != nil {
		http.Redirect(w, r, h.failureURL, http.StatusFound)
		return
	}

	// The Spotify user id keys the session store, so a second login for the
	// same account supersedes the first session.
	userID, err := h.spotify.CurrentUserID(r.Context(), token.AccessToken)
	if err != nil {
		http.Redirect(w, r, h.failureURL, http.StatusFound)
		return
	}

	session := h.sessions.Create(userID, token)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	})

	http.Redirect(w, r, h.successURL, http.StatusFound)
}

// logout deletes the session and clears its cookie.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func generateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

// StateStore manages CSRF state parameters (simple in-memory).
type StateStore struct {
	states sync.Map // map[state]time.Time (expiry)
}

// NewStateStore creates a new state store.
func NewStateStore() *StateStore {
	store := &StateStore{}
	go store.cleanup()
	return store
}

// Save stores a state with an expiry.
func (s *StateStore) Save(state string, duration time.Duration) {
	s.states.Store(state, time.Now().Add(duration))
}

// Verify checks and consumes a state (one-time use).
func (s *StateStore) Verify(state string) bool {
	if state == "" {
		return false
	}
	val, ok := s.states.Load(state)
	if !ok {
		return false
	}
	s.states.Delete(state) // One-time use
	return time.Now().Before(val.(time.Time))
}

func (s *StateStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.states.Range(func(key, value interface{}) bool {
			if now.After(value.(time.Time)) {
				s.states.Delete(key)
			}
			return true
		})
	}
}
