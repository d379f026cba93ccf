package api

import (
	"context"
	"encoding/json"
)

// stubSpotifyService serves canned payloads and records the token it was called with.
type stubSpotifyService struct {
	payload   string
	userID    string
	err       error
	lastToken string
}

func (s *stubSpotifyService) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	s.lastToken = accessToken
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.payload), nil
}

func (s *stubSpotifyService) TopArtists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.Profile(ctx, accessToken)
}

func (s *stubSpotifyService) RecentlyPlayed(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.Profile(ctx, accessToken)
}

func (s *stubSpotifyService) CurrentUserID(ctx context.Context, accessToken string) (string, error) {
	s.lastToken = accessToken
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

// stubLyricsService records requests and replies with a fixed completion.
type stubLyricsService struct {
	lastGenerate *GenerateLyricsRequest
	lastBlend    *BlendLyricsRequest
	content      string
	err          error
}

func (s *stubLyricsService) Generate(ctx context.Context, req *GenerateLyricsRequest) (*CompletionResponse, error) {
	s.lastGenerate = req
	if s.err != nil {
		return nil, s.err
	}
	return s.completion(), nil
}

func (s *stubLyricsService) Blend(ctx context.Context, req *BlendLyricsRequest) (*CompletionResponse, error) {
	s.lastBlend = req
	if s.err != nil {
		return nil, s.err
	}
	return s.completion(), nil
}

func (s *stubLyricsService) completion() *CompletionResponse {
	return &CompletionResponse{
		Model: "gpt-4o-mini",
		Choices: []CompletionChoice{
			{Message: CompletionMessage{Role: "assistant", Content: s.content}},
		},
	}
}
