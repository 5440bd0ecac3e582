package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FITSUN_TEST_KEY", "secret")

	assert.Equal(t, "key=secret", expandEnv("key=${FITSUN_TEST_KEY}"))
	assert.Equal(t, "port=3000", expandEnv("port=${FITSUN_TEST_UNSET_PORT:3000}"))
	assert.Equal(t, "empty=", expandEnv("empty=${FITSUN_TEST_UNSET_EMPTY:}"))
	assert.Equal(t, "raw=${FITSUN_TEST_UNSET}", expandEnv("raw=${FITSUN_TEST_UNSET}"))
}

func TestLoadFromAppliesDefaultsAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "staging")
	t.Setenv("FITSUN_TEST_GEMINI_KEY", "g-key")

	writeConfig(t, dir, "config.yaml", `
app:
  name: fitsun-api
llm:
  default_provider: gemini
  providers:
    gemini:
      kind: gemini
      api_key: ${FITSUN_TEST_GEMINI_KEY}
      model: gemini-2.0-flash
`)
	writeConfig(t, dir, "config.staging.yaml", `
workout:
  fallback_on_upstream_error: true
  extraction_mode: balanced
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.HTTP.Port)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "FitSun Backend API", cfg.App.Banner)
	assert.Equal(t, 60*time.Second, cfg.Workout.Timeout)
	assert.True(t, cfg.Workout.FallbackOnUpstreamError)
	assert.Equal(t, ExtractionModeBalanced, cfg.Workout.ExtractionMode)

	name, p, ok := cfg.LLM.Provider("")
	require.True(t, ok)
	assert.Equal(t, "gemini", name)
	assert.Equal(t, "g-key", p.APIKey)
	assert.Equal(t, ProviderKindGemini, p.Kind)
}

func TestLoadFromRejectsUnknownProviderKind(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "test")
	writeConfig(t, dir, "config.yaml", `
llm:
  providers:
    local:
      kind: ollama
`)

	_, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported kind")
}

func TestLoadFromMissingBaseFile(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
}
