package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"fitsun-api/internal/config"
	workflowport "fitsun-api/internal/workflow/port"
)

const defaultGeminiModel = "gemini-2.0-flash"

// geminiGenerator 使用 Google GenAI SDK 调用 Gemini
type geminiGenerator struct {
	client *genai.Client
	model  string
	cfg    config.ProviderConfig
}

func newGeminiGenerator(ctx context.Context, _ string, cfg config.ProviderConfig) (workflowport.TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Timeout > 0 {
		timeout := cfg.Timeout
		cc.HTTPOptions.Timeout = &timeout
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiGenerator{client: client, model: model, cfg: cfg}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, msgs []*schema.Message) (string, error) {
	system, contents := toGenAIContents(msgs)
	if len(contents) == 0 {
		return "", fmt.Errorf("no user content to send")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, generateConfig(g.cfg, system))
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}

// generateConfig 构建生成参数；未配置的采样参数不发送，由模型使用默认值
func generateConfig(cfg config.ProviderConfig, system string) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		Temperature: ptrFloat32(float32(cfg.Temperature)),
	}
	if cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(cfg.MaxTokens)
	}
	if system != "" {
		gc.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	return gc
}

// toGenAIContents 将 Eino 消息转换为 GenAI 内容；system 消息合并为 SystemInstruction
func toGenAIContents(msgs []*schema.Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		switch m.Role {
		case schema.System:
			system = append(system, m.Content)
		case schema.Assistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}
