package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter assembles the route table. Health, the login flow, debug-config
// and the generation routes are public; the /spotify data routes sit behind
// the session middleware.
func NewRouter(authHandler *AuthHandler, spotifyHandler *SpotifyHandler, lyricsHandler *LyricsHandler, sessionMiddleware func(http.Handler) http.Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint (public, no auth)
	r.HandleFunc("/health", HealthCheckHandler).Methods(http.MethodGet)

	// Public routes (no middleware). debug-config must be registered before
	// the /spotify subrouter so it stays outside the session check.
	authHandler.RegisterRoutes(r)
	spotifyHandler.RegisterPublicRoutes(r)
	lyricsHandler.RegisterRoutes(r)

	// Protected data routes
	dataRouter := r.PathPrefix("/spotify").Subrouter()
	if sessionMiddleware != nil {
		dataRouter.Use(sessionMiddleware)
	}
	spotifyHandler.RegisterRoutes(dataRouter)

	return r
}

// WithCORS wraps the router with a cross-origin policy scoped to the
// configured frontend origins. Credentials are allowed because the session
// rides on a cookie.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)(h)
}
