package biz

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lyrics-backend/internal/conf"

	"github.com/cloudwego/eino/schema"
)

const (
	lyricsSystemPrompt = "You are a creative songwriter. Generate original lyrics that capture the style and themes of specific artists without copying existing songs. Focus on matching their typical song structure, vocabulary, and emotional tone."

	blendSystemPrompt = "You are an expert at analyzing and blending musical styles. Create original lyrics that authentically combine different artists' approaches without copying existing songs."
)

// Sampling presets. Blending gets a longer budget and runs slightly hotter.
const (
	lyricsMaxTokens   = 500
	lyricsTemperature = 0.8
	blendMaxTokens    = 600
	blendTemperature  = 0.85
	generationTopP    = 0.9
)

// LyricsRequest describes a single-artist generation. Empty fields are
// simply left out of the prompt.
type LyricsRequest struct {
	Artist string
	Genre  string
	Theme  string
}

// BlendRequest describes a two-artist blend. Both artists are required;
// all four fields appear in the prompt verbatim.
type BlendRequest struct {
	Artist1 string
	Artist2 string
	Genre   string
	Theme   string
}

// Completion is the generated result handed back to the HTTP layer.
type Completion struct {
	Model   string
	Content string
}

// LyricsUsecase builds prompts and runs them against the completion provider.
type LyricsUsecase struct {
	factory ChatModelFactory
	model   string
}

// NewLyricsUsecase creates a LyricsUsecase.
func NewLyricsUsecase(factory ChatModelFactory, cfg conf.OpenAI) *LyricsUsecase {
	return &LyricsUsecase{
		factory: factory,
		model:   cfg.Model,
	}
}

// GenerateLyrics generates lyrics in the style of a single artist.
func (uc *LyricsUsecase) GenerateLyrics(ctx context.Context, req *LyricsRequest) (*Completion, error) {
	params := GenerationParams{
		Model:       uc.model,
		MaxTokens:   lyricsMaxTokens,
		Temperature: lyricsTemperature,
		TopP:        generationTopP,
	}
	return uc.generate(ctx, lyricsSystemPrompt, BuildLyricsPrompt(req), params)
}

// GenerateBlendedLyrics generates lyrics blending two artists' styles.
func (uc *LyricsUsecase) GenerateBlendedLyrics(ctx context.Context, req *BlendRequest) (*Completion, error) {
	if req.Artist1 == "" || req.Artist2 == "" {
		return nil, fmt.Errorf("%w: both artists are required for a blend", ErrInvalidRequest)
	}
	params := GenerationParams{
		Model:       uc.model,
		MaxTokens:   blendMaxTokens,
		Temperature: blendTemperature,
		TopP:        generationTopP,
	}
	return uc.generate(ctx, blendSystemPrompt, BuildBlendPrompt(req), params)
}

func (uc *LyricsUsecase) generate(ctx context.Context, system, user string, params GenerationParams) (*Completion, error) {
	chatModel, err := uc.factory.CreateChatModel(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	resp, err := chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, classifyGenerationError(err)
	}

	return &Completion{Model: params.Model, Content: resp.Content}, nil
}

// BuildLyricsPrompt assembles the single-artist prompt. Clauses are appended
// only for non-empty fields, in a fixed order: style, genre, theme.
func BuildLyricsPrompt(req *LyricsRequest) string {
	var prompt strings.Builder

	prompt.WriteString("Generate original song lyrics")

	if req.Artist != "" {
		prompt.WriteString(" in the style of ")
		prompt.WriteString(req.Artist)
	}
	if req.Genre != "" {
		prompt.WriteString(" with ")
		prompt.WriteString(req.Genre)
		prompt.WriteString(" influences")
	}
	if req.Theme != "" {
		prompt.WriteString(" about ")
		prompt.WriteString(req.Theme)
	}

	prompt.WriteString(". ")
	prompt.WriteString("Include a verse and chorus. ")
	prompt.WriteString("Match the typical song structure, vocabulary, and emotional tone of this style. ")
	prompt.WriteString("Make it original and creative, not a copy of existing songs.")

	return prompt.String()
}

// BuildBlendPrompt assembles the two-artist prompt. All four fields appear
// verbatim; nothing is conditionally omitted.
func BuildBlendPrompt(req *BlendRequest) string {
	return fmt.Sprintf(
		"Create original song lyrics that blend the styles of %s and %s for a %s song about %s. "+
			"First analyze how each artist actually writes: %s's typical rhyme schemes, song structures, and vocabulary, and %s's musical approach and energy. "+
			"Use the rhyme schemes and structures these artists actually favor instead of defaulting to a simple AABB pattern. "+
			"Include a verse and chorus that showcase both influences.",
		req.Artist1, req.Artist2, req.Genre, req.Theme, req.Artist1, req.Artist2,
	)
}

var statusCodePattern = regexp.MustCompile(`status code: (\d{3})`)

// classifyGenerationError maps a completion-provider failure onto the error
// taxonomy. The provider client reports HTTP failures as "status code: NNN"
// in the error text; absent that, the upstream never answered.
func classifyGenerationError(err error) error {
	if match := statusCodePattern.FindStringSubmatch(err.Error()); match != nil {
		status, _ := strconv.Atoi(match[1])
		switch {
		case status == 400:
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		case status >= 500:
			return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		default:
			return &UpstreamError{Upstream: "openai", Status: status, Body: err.Error()}
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
