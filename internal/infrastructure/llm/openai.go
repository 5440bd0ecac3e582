package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"fitsun-api/internal/config"
	workflowport "fitsun-api/internal/workflow/port"
)

// chatModelGenerator 将 Eino ChatModel 适配为 TextGenerator（OpenAI 兼容协议）
type chatModelGenerator struct {
	model model.BaseChatModel
}

func newChatModelGenerator(ctx context.Context, _ string, cfg config.ProviderConfig) (workflowport.TextGenerator, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   ptrInt(cfg.MaxTokens),
		Temperature: ptrFloat32(float32(cfg.Temperature)),
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return &chatModelGenerator{model: chatModel}, nil
}

func (g *chatModelGenerator) Generate(ctx context.Context, msgs []*schema.Message) (string, error) {
	out, err := g.model.Generate(ctx, msgs)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", fmt.Errorf("chat model returned no message")
	}
	return out.Content, nil
}

func ptrInt(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func ptrFloat32(f float32) *float32 {
	if f <= 0 {
		return nil
	}
	return &f
}
