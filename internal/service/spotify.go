package service

import (
	"context"
	"encoding/json"

	"lyrics-backend/internal/api"
	"lyrics-backend/internal/biz"
)

// spotifyService adapts the spotify usecase to the api interface.
type spotifyService struct {
	spotifyUsecase *biz.SpotifyUsecase
}

// NewSpotifyService creates the api.SpotifyService implementation.
func NewSpotifyService(spotifyUsecase *biz.SpotifyUsecase) api.SpotifyService {
	return &spotifyService{
		spotifyUsecase: spotifyUsecase,
	}
}

func (s *spotifyService) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.spotifyUsecase.Profile(ctx, accessToken)
}

func (s *spotifyService) TopArtists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.spotifyUsecase.TopArtists(ctx, accessToken)
}

func (s *spotifyService) RecentlyPlayed(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.spotifyUsecase.RecentlyPlayed(ctx, accessToken)
}

func (s *spotifyService) CurrentUserID(ctx context.Context, accessToken string) (string, error) {
	return s.spotifyUsecase.CurrentUserID(ctx, accessToken)
}
