package service

import (
	"context"

	"lyrics-backend/internal/api"
	"lyrics-backend/internal/biz"
)

// lyricsService adapts the lyrics usecase to the api interface.
type lyricsService struct {
	lyricsUsecase *biz.LyricsUsecase
}

// NewLyricsService creates the api.LyricsService implementation.
func NewLyricsService(lyricsUsecase *biz.LyricsUsecase) api.LyricsService {
	return &lyricsService{
		lyricsUsecase: lyricsUsecase,
	}
}

// Generate runs a single-artist generation, converting DTOs both ways.
func (s *lyricsService) Generate(ctx context.Context, req *api.GenerateLyricsRequest) (*api.CompletionResponse, error) {
	completion, err := s.lyricsUsecase.GenerateLyrics(ctx, &biz.LyricsRequest{
		Artist: req.Artist,
		Genre:  req.Genre,
		Theme:  req.Theme,
	})
	if err != nil {
		return nil, err
	}
	return toCompletionResponse(completion), nil
}

// Blend runs a two-artist blend.
func (s *lyricsService) Blend(ctx context.Context, req *api.BlendLyricsRequest) (*api.CompletionResponse, error) {
	completion, err := s.lyricsUsecase.GenerateBlendedLyrics(ctx, &biz.BlendRequest{
		Artist1: req.Artist1,
		Artist2: req.Artist2,
		Genre:   req.Genre,
		Theme:   req.Theme,
	})
	if err != nil {
		return nil, err
	}
	return toCompletionResponse(completion), nil
}

// toCompletionResponse shapes a completion like the provider's own response
// object, which is what the frontend decodes.
func toCompletionResponse(completion *biz.Completion) *api.CompletionResponse {
	return &api.CompletionResponse{
		Model: completion.Model,
		Choices: []api.CompletionChoice{
			{
				Index: 0,
				Message: api.CompletionMessage{
					Role:    "assistant",
					Content: completion.Content,
				},
			},
		},
	}
}
