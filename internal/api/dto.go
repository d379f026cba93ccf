package api

import (
	"context"
	"encoding/json"
)

// GenerateLyricsRequest is the single-artist generation request DTO.
// Every field is optional; empty fields are left out of the prompt.
type GenerateLyricsRequest struct {
	Artist string `json:"artist,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Theme  string `json:"theme,omitempty"`
}

// BlendLyricsRequest is the two-artist blend request DTO.
type BlendLyricsRequest struct {
	Artist1 string `json:"artist1"`
	Artist2 string `json:"artist2"`
	Genre   string `json:"genre,omitempty"`
	Theme   string `json:"theme,omitempty"`
}

// CompletionMessage is one message of a completion response.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionChoice is one candidate completion.
type CompletionChoice struct {
	Index   int               `json:"index"`
	Message CompletionMessage `json:"message"`
}

// CompletionResponse is the completion-shaped payload the frontend decodes
// (it reads choices[0].message.content).
type CompletionResponse struct {
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
}

// LyricsService is the lyric generation interface (implemented by the service layer).
type LyricsService interface {
	Generate(ctx context.Context, req *GenerateLyricsRequest) (*CompletionResponse, error)
	Blend(ctx context.Context, req *BlendLyricsRequest) (*CompletionResponse, error)
}

// SpotifyService is the music-data interface (implemented by the service layer).
type SpotifyService interface {
	Profile(ctx context.Context, accessToken string) (json.RawMessage, error)
	TopArtists(ctx context.Context, accessToken string) (json.RawMessage, error)
	RecentlyPlayed(ctx context.Context, accessToken string) (json.RawMessage, error)
	CurrentUserID(ctx context.Context, accessToken string) (string, error)
}
