package biz

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// GenerationParams are the sampling parameters for one completion request.
// Constructed fresh per request, never persisted.
type GenerationParams struct {
	Model       string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// ChatModelFactory builds a chat model configured with the given sampling
// parameters. The data layer implements it against the completion provider.
type ChatModelFactory interface {
	CreateChatModel(ctx context.Context, params GenerationParams) (model.BaseChatModel, error)
}
