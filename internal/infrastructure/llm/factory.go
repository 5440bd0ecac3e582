package llm

import (
	"context"
	"fmt"
	"sync"

	"fitsun-api/internal/config"
	workflowport "fitsun-api/internal/workflow/port"
)

// Factory 按提供商名称管理 TextGenerator 实例，惰性创建并缓存
type Factory struct {
	config     *config.LLMConfig
	generators map[string]workflowport.TextGenerator
	mu         sync.RWMutex

	// builders 按 kind 创建底层客户端，测试中可替换
	builders map[string]builderFunc
}

type builderFunc func(ctx context.Context, name string, cfg config.ProviderConfig) (workflowport.TextGenerator, error)

// NewFactory 创建 LLM 工厂
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config:     &cfg.LLM,
		generators: make(map[string]workflowport.TextGenerator),
		builders: map[string]builderFunc{
			config.ProviderKindOpenAI: newChatModelGenerator,
			config.ProviderKindGemini: newGeminiGenerator,
		},
	}
}

// Get 获取指定名称的 TextGenerator，如果未指定则返回默认提供商
func (f *Factory) Get(ctx context.Context, name string) (workflowport.TextGenerator, error) {
	name, providerCfg, ok := f.config.Provider(name)

	f.mu.RLock()
	g, cached := f.generators[name]
	f.mu.RUnlock()
	if cached {
		return g, nil
	}
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// 再次检查防止竞态
	if g, cached = f.generators[name]; cached {
		return g, nil
	}

	kind := providerCfg.Kind
	if kind == "" {
		kind = config.ProviderKindOpenAI
	}
	build, ok := f.builders[kind]
	if !ok {
		return nil, fmt.Errorf("provider %s has unsupported kind %q", name, kind)
	}

	inner, err := build(ctx, name, providerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator for %s: %w", name, err)
	}

	g = newInstrumented(inner, name, providerCfg.Model)
	f.generators[name] = g
	return g, nil
}

// Configured 默认提供商是否已配置且带有 API Key，用于就绪检查
func (f *Factory) Configured() bool {
	_, p, ok := f.config.Provider("")
	return ok && p.APIKey != ""
}
