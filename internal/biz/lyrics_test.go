package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"lyrics-backend/internal/conf"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fakeChatModel records the conversation it was asked to generate from.
type fakeChatModel struct {
	messages []*schema.Message
	reply    string
	err      error
}

func (m *fakeChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.messages = messages
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *fakeChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported in tests")
}

// fakeFactory records the sampling parameters each request was built with.
type fakeFactory struct {
	params GenerationParams
	model  *fakeChatModel
}

func (f *fakeFactory) CreateChatModel(ctx context.Context, params GenerationParams) (model.BaseChatModel, error) {
	f.params = params
	return f.model, nil
}

func newTestUsecase(reply string, err error) (*LyricsUsecase, *fakeFactory) {
	factory := &fakeFactory{model: &fakeChatModel{reply: reply, err: err}}
	uc := NewLyricsUsecase(factory, conf.OpenAI{Model: "gpt-4o-mini"})
	return uc, factory
}

func TestBuildLyricsPromptClauseOrder(t *testing.T) {
	prompt := BuildLyricsPrompt(&LyricsRequest{
		Artist: "The 1975",
		Genre:  "pop",
		Theme:  "dating apps",
	})

	style := strings.Index(prompt, "in the style of The 1975")
	genre := strings.Index(prompt, "with pop influences")
	theme := strings.Index(prompt, "about dating apps")

	if style < 0 || genre < 0 || theme < 0 {
		t.Fatalf("prompt missing a clause: %q", prompt)
	}
	if !(style < genre && genre < theme) {
		t.Fatalf("clauses out of order: %q", prompt)
	}

	for _, clause := range []string{"in the style of The 1975", "with pop influences", "about dating apps"} {
		if strings.Count(prompt, clause) != 1 {
			t.Fatalf("clause %q should appear exactly once in %q", clause, prompt)
		}
	}
}

func TestBuildLyricsPromptOmitsEmptyFields(t *testing.T) {
	prompt := BuildLyricsPrompt(&LyricsRequest{Artist: "The 1975", Theme: "dating apps"})

	if strings.Contains(prompt, "influences") {
		t.Fatalf("genre clause should be omitted entirely: %q", prompt)
	}
	if strings.Contains(prompt, "with  ") {
		t.Fatalf("no empty placeholder expected: %q", prompt)
	}

	empty := BuildLyricsPrompt(&LyricsRequest{})
	if !strings.HasPrefix(empty, "Generate original song lyrics. ") {
		t.Fatalf("base instruction should survive with all fields empty: %q", empty)
	}
}

func TestBuildBlendPromptIncludesAllParameters(t *testing.T) {
	prompt := BuildBlendPrompt(&BlendRequest{
		Artist1: "Drake",
		Artist2: "Adele",
		Genre:   "pop",
		Theme:   "heartbreak",
	})

	for _, want := range []string{"Drake", "Adele", "pop", "heartbreak", "AABB"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("blend prompt missing %q: %q", want, prompt)
		}
	}
}

func TestGenerateLyricsSamplingParameters(t *testing.T) {
	uc, factory := newTestUsecase("la la la", nil)

	completion, err := uc.GenerateLyrics(context.Background(), &LyricsRequest{Artist: "The 1975"})
	if err != nil {
		t.Fatalf("GenerateLyrics failed: %v", err)
	}

	if factory.params.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", factory.params.Model)
	}
	if factory.params.MaxTokens != 500 {
		t.Fatalf("expected maxTokens 500, got %d", factory.params.MaxTokens)
	}
	if factory.params.Temperature != 0.8 {
		t.Fatalf("expected temperature 0.8, got %v", factory.params.Temperature)
	}
	if factory.params.TopP != 0.9 {
		t.Fatalf("expected topP 0.9, got %v", factory.params.TopP)
	}
	if completion.Content != "la la la" {
		t.Fatalf("unexpected content: %s", completion.Content)
	}
}

func TestGenerateBlendedLyricsSamplingParameters(t *testing.T) {
	uc, factory := newTestUsecase("blended", nil)

	_, err := uc.GenerateBlendedLyrics(context.Background(), &BlendRequest{
		Artist1: "Drake",
		Artist2: "Adele",
		Genre:   "pop",
		Theme:   "heartbreak",
	})
	if err != nil {
		t.Fatalf("GenerateBlendedLyrics failed: %v", err)
	}

	if factory.params.MaxTokens != 600 {
		t.Fatalf("expected maxTokens 600, got %d", factory.params.MaxTokens)
	}
	if factory.params.Temperature != 0.85 {
		t.Fatalf("expected temperature 0.85, got %v", factory.params.Temperature)
	}
	if factory.params.TopP != 0.9 {
		t.Fatalf("expected topP 0.9, got %v", factory.params.TopP)
	}
}

func TestGenerateSubmitsSystemAndUserMessages(t *testing.T) {
	uc, factory := newTestUsecase("ok", nil)

	if _, err := uc.GenerateLyrics(context.Background(), &LyricsRequest{Artist: "The 1975"}); err != nil {
		t.Fatalf("GenerateLyrics failed: %v", err)
	}

	messages := factory.model.messages
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != schema.System {
		t.Fatalf("first message should be the system instruction, got %s", messages[0].Role)
	}
	if !strings.Contains(messages[0].Content, "songwriter") {
		t.Fatalf("unexpected system prompt: %q", messages[0].Content)
	}
	if messages[1].Role != schema.User {
		t.Fatalf("second message should be the user prompt, got %s", messages[1].Role)
	}
}

func TestBlendRequiresBothArtists(t *testing.T) {
	uc, _ := newTestUsecase("", nil)

	_, err := uc.GenerateBlendedLyrics(context.Background(), &BlendRequest{Artist1: "Drake"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestClassifyGenerationError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", fmt.Errorf("error, status code: 400, message: bad temperature"), ErrInvalidRequest},
		{"rate limited", fmt.Errorf("error, status code: 429, message: rate limit"), nil},
		{"server error", fmt.Errorf("error, status code: 503, message: overloaded"), ErrUpstreamUnavailable},
		{"no response", errors.New("dial tcp: connection refused"), ErrUpstreamUnavailable},
	}

	for _, tc := range cases {
		got := classifyGenerationError(tc.err)
		if tc.want != nil {
			if !errors.Is(got, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
			}
			continue
		}
		var upstreamErr *UpstreamError
		if !errors.As(got, &upstreamErr) {
			t.Fatalf("%s: expected UpstreamError, got %v", tc.name, got)
		}
		if upstreamErr.Status != 429 {
			t.Fatalf("%s: expected status 429, got %d", tc.name, upstreamErr.Status)
		}
	}
}

func TestGenerateClassifiesProviderFailure(t *testing.T) {
	uc, _ := newTestUsecase("", fmt.Errorf("error, status code: 401, message: invalid api key"))

	_, err := uc.GenerateLyrics(context.Background(), &LyricsRequest{Artist: "The 1975"})
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstreamErr.Status != 401 {
		t.Fatalf("expected upstream status 401, got %d", upstreamErr.Status)
	}
}
