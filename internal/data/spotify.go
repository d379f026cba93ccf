// Spotify Web API client for the data the lyric frontend displays.
//
// Response shapes per https://developer.spotify.com/documentation/web-api/reference/
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lyrics-backend/internal/biz"
)

const spotifyBaseURL = "https://api.spotify.com/v1"

// upstreamTimeout bounds every outbound call; past it the upstream counts as unavailable.
const upstreamTimeout = 30 * time.Second

// spotifyUser is the slice of the /me payload the backend itself needs.
// The full payload is still passed through to callers untouched.
type spotifyUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// SpotifyClient performs authenticated reads against the Spotify Web API.
type SpotifyClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyClient creates a Spotify API client.
func NewSpotifyClient() *SpotifyClient {
	return &SpotifyClient{
		baseURL:    spotifyBaseURL,
		httpClient: &http.Client{Timeout: upstreamTimeout},
	}
}

// Profile retrieves the current user's profile as raw JSON.
func (c *SpotifyClient) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.get(ctx, accessToken, "/me")
}

// TopArtists retrieves the user's top artists. Page size and time window are
// fixed: 20 items over the medium term (~6 months).
func (c *SpotifyClient) TopArtists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.get(ctx, accessToken, "/me/top/artists?limit=20&time_range=medium_term")
}

// RecentlyPlayed retrieves the user's 20 most recently played tracks.
func (c *SpotifyClient) RecentlyPlayed(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.get(ctx, accessToken, "/me/player/recently-played?limit=20")
}

// CurrentUser fetches /me and decodes the fields that identify the user.
// The login flow uses the ID to key the session store.
func (c *SpotifyClient) CurrentUser(ctx context.Context, accessToken string) (*biz.MusicUser, error) {
	body, err := c.Profile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	var user spotifyUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	return &biz.MusicUser{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
	}, nil
}

// get performs an authenticated GET and maps failures onto the error taxonomy:
// 401 means the token is stale, 5xx and transport errors mean the upstream is
// unavailable, any other non-2xx is surfaced with its status and body.
func (c *SpotifyClient) get(ctx context.Context, accessToken, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", biz.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", biz.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return json.RawMessage(body), nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: spotify rejected the token", biz.ErrAuthExpired)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: spotify returned status %d", biz.ErrUpstreamUnavailable, resp.StatusCode)
	default:
		return nil, &biz.UpstreamError{Upstream: "spotify", Status: resp.StatusCode, Body: string(body)}
	}
}
