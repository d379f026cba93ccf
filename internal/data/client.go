package data

import (
	"context"
	"fmt"

	"lyrics-backend/internal/biz"
	"lyrics-backend/internal/conf"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// ClientFactory builds OpenAI chat models. Sampling parameters live in the
// model config, so each request gets a model carrying exactly its preset.
type ClientFactory struct {
	cfg conf.OpenAI
}

// NewClientFactory creates the completion-provider client factory.
func NewClientFactory(cfg conf.OpenAI) biz.ChatModelFactory {
	return &ClientFactory{cfg: cfg}
}

// CreateChatModel creates a chat model for one generation request.
func (f *ClientFactory) CreateChatModel(ctx context.Context, params biz.GenerationParams) (model.BaseChatModel, error) {
	if f.cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     f.cfg.BaseURL,
		APIKey:      f.cfg.APIKey,
		Model:       params.Model,
		MaxTokens:   &params.MaxTokens,
		Temperature: &params.Temperature,
		TopP:        &params.TopP,
		Timeout:     upstreamTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model: %w", err)
	}
	return chatModel, nil
}
