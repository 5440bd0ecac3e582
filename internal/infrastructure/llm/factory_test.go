package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsun-api/internal/config"
	workflowport "fitsun-api/internal/workflow/port"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(context.Context, []*schema.Message) (string, error) {
	return f.text, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "primary",
			Providers: map[string]config.ProviderConfig{
				"primary":   {Kind: "fake", APIKey: "k", Model: "m1"},
				"secondary": {Kind: "fake", Model: "m2"},
				"broken":    {Kind: "nope"},
			},
		},
	}
}

func TestFactoryLazyAndCached(t *testing.T) {
	var builds int32
	f := NewFactory(testConfig())
	f.builders["fake"] = func(_ context.Context, name string, cfg config.ProviderConfig) (workflowport.TextGenerator, error) {
		atomic.AddInt32(&builds, 1)
		return &fakeGenerator{text: name + ":" + cfg.Model}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Get(context.Background(), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, atomic.LoadInt32(&builds))

	g, err := f.Get(context.Background(), "")
	require.NoError(t, err)
	text, err := g.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "primary:m1", text)

	g, err = f.Get(context.Background(), "secondary")
	require.NoError(t, err)
	text, _ = g.Generate(context.Background(), nil)
	assert.Equal(t, "secondary:m2", text)
	assert.EqualValues(t, 2, atomic.LoadInt32(&builds))
}

func TestFactoryErrors(t *testing.T) {
	f := NewFactory(testConfig())

	_, err := f.Get(context.Background(), "missing")
	assert.ErrorContains(t, err, "not found")

	_, err = f.Get(context.Background(), "broken")
	assert.ErrorContains(t, err, "unsupported kind")

	f.builders["fake"] = func(context.Context, string, config.ProviderConfig) (workflowport.TextGenerator, error) {
		return nil, errors.New("dial failed")
	}
	_, err = f.Get(context.Background(), "primary")
	assert.ErrorContains(t, err, "dial failed")
}

func TestFactoryOpenAIKindBuildsWithoutNetwork(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{
		DefaultProvider: "compat",
		Providers: map[string]config.ProviderConfig{
			"compat": {Kind: config.ProviderKindOpenAI, APIKey: "k", BaseURL: "http://127.0.0.1:1/v1", Model: "gpt"},
		},
	}}
	f := NewFactory(cfg)
	g, err := f.Get(context.Background(), "")
	require.NoError(t, err)
	assert.IsType(t, &instrumented{}, g)
	assert.True(t, f.Configured())
}

func TestFactoryConfigured(t *testing.T) {
	cfg := testConfig()
	assert.True(t, NewFactory(cfg).Configured())

	cfg.LLM.DefaultProvider = "secondary"
	assert.False(t, NewFactory(cfg).Configured())
}

func TestInstrumentedPassesThrough(t *testing.T) {
	g := newInstrumented(&fakeGenerator{text: "ok"}, "p", "m")
	text, err := g.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	boom := errors.New("boom")
	_, err = newInstrumented(&fakeGenerator{err: boom}, "p", "m").Generate(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

func TestToGenAIContentsSplitsSystem(t *testing.T) {
	system, contents := toGenAIContents([]*schema.Message{
		schema.SystemMessage("sys"),
		schema.UserMessage("user"),
		schema.AssistantMessage("model", nil),
		nil,
	})
	assert.Equal(t, "sys", system)
	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "user", contents[0].Parts[0].Text)
}

func TestGenerateConfigOmitsUnsetSampling(t *testing.T) {
	gc := generateConfig(config.ProviderConfig{}, "")
	assert.Nil(t, gc.Temperature)
	assert.Zero(t, gc.MaxOutputTokens)
	assert.Nil(t, gc.SystemInstruction)

	gc = generateConfig(config.ProviderConfig{Temperature: 0.7, MaxTokens: 2048}, "sys")
	require.NotNil(t, gc.Temperature)
	assert.InDelta(t, 0.7, *gc.Temperature, 1e-6)
	assert.EqualValues(t, 2048, gc.MaxOutputTokens)
	require.NotNil(t, gc.SystemInstruction)
	assert.Equal(t, "sys", gc.SystemInstruction.Parts[0].Text)
}

func TestPtrFloat32OmitsUnset(t *testing.T) {
	assert.Nil(t, ptrFloat32(0))
	require.NotNil(t, ptrFloat32(0.2))
	assert.InDelta(t, 0.2, *ptrFloat32(0.2), 1e-6)
}
