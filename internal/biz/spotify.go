package biz

import (
	"context"
	"encoding/json"
	"fmt"
)

// MusicUser identifies the Spotify account behind a session.
type MusicUser struct {
	ID          string
	DisplayName string
	Email       string
}

// MusicRepo is the authenticated read surface of the music service.
// The data layer implements it against the Spotify Web API.
type MusicRepo interface {
	Profile(ctx context.Context, accessToken string) (json.RawMessage, error)
	TopArtists(ctx context.Context, accessToken string) (json.RawMessage, error)
	RecentlyPlayed(ctx context.Context, accessToken string) (json.RawMessage, error)
	CurrentUser(ctx context.Context, accessToken string) (*MusicUser, error)
}

// SpotifyUsecase exposes the three profile reads plus the identity lookup
// the login flow needs. Payloads pass through untouched.
type SpotifyUsecase struct {
	repo MusicRepo
}

// NewSpotifyUsecase creates a SpotifyUsecase.
func NewSpotifyUsecase(repo MusicRepo) *SpotifyUsecase {
	return &SpotifyUsecase{repo: repo}
}

// Profile returns the current user's profile JSON.
func (uc *SpotifyUsecase) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return uc.repo.Profile(ctx, accessToken)
}

// TopArtists returns the user's top artists JSON.
func (uc *SpotifyUsecase) TopArtists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return uc.repo.TopArtists(ctx, accessToken)
}

// RecentlyPlayed returns the user's recently played tracks JSON.
func (uc *SpotifyUsecase) RecentlyPlayed(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return uc.repo.RecentlyPlayed(ctx, accessToken)
}

// CurrentUserID resolves the Spotify user id behind an access token.
func (uc *SpotifyUsecase) CurrentUserID(ctx context.Context, accessToken string) (string, error) {
	user, err := uc.repo.CurrentUser(ctx, accessToken)
	if err != nil {
		return "", err
	}
	if user.ID == "" {
		return "", fmt.Errorf("spotify profile has no user id")
	}
	return user.ID, nil
}
