// Package config 提供配置加载和管理功能
package config

import (
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Workout       WorkoutConfig       `yaml:"workout" mapstructure:"workout"`
	Identity      IdentityConfig      `yaml:"identity" mapstructure:"identity"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
	// Banner GET / 返回的服务描述
	Banner string `yaml:"banner" mapstructure:"banner"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	// Enabled 未启用时限流中间件直接放行
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// LLMConfig LLM 配置
type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider" mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
}

// Provider kinds
const (
	ProviderKindOpenAI = "openai"
	ProviderKindGemini = "gemini"
)

// ProviderConfig LLM 提供商配置
type ProviderConfig struct {
	// Kind 客户端类型：openai（OpenAI 兼容协议）或 gemini（Google GenAI SDK）
	Kind        string        `yaml:"kind" mapstructure:"kind"`
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Model       string        `yaml:"model" mapstructure:"model"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Extraction modes
const (
	ExtractionModeGreedy   = "greedy"
	ExtractionModeBalanced = "balanced"
)

// WorkoutConfig 训练计划生成配置
type WorkoutConfig struct {
	// Provider 使用的 LLM 提供商，为空时使用 llm.default_provider
	Provider string `yaml:"provider" mapstructure:"provider"`
	// Timeout 单次生成调用的超时时间
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// FallbackOnUpstreamError 生成调用失败时是否返回兜底计划（默认返回 500）
	FallbackOnUpstreamError bool `yaml:"fallback_on_upstream_error" mapstructure:"fallback_on_upstream_error"`
	// StrictValidation 解析后校验计划结构，不合格时走兜底
	StrictValidation bool `yaml:"strict_validation" mapstructure:"strict_validation"`
	// ExtractionMode greedy：首个 { 到最后一个 }；balanced：首个配平的 {...}
	ExtractionMode string `yaml:"extraction_mode" mapstructure:"extraction_mode"`
	// RawLogMaxRunes 解析失败时记录原始响应的最大字符数
	RawLogMaxRunes int `yaml:"raw_log_max_runes" mapstructure:"raw_log_max_runes"`
}

// IdentityConfig 身份/凭据服务配置（服务账号）
type IdentityConfig struct {
	Enabled       bool          `yaml:"enabled" mapstructure:"enabled"`
	ProjectID     string        `yaml:"project_id" mapstructure:"project_id"`
	PrivateKeyID  string        `yaml:"private_key_id" mapstructure:"private_key_id"`
	PrivateKey    string        `yaml:"private_key" mapstructure:"private_key"`
	ClientEmail   string        `yaml:"client_email" mapstructure:"client_email"`
	ClientID      string        `yaml:"client_id" mapstructure:"client_id"`
	Scopes        []string      `yaml:"scopes" mapstructure:"scopes"`
	VerifyOnStart bool          `yaml:"verify_on_start" mapstructure:"verify_on_start"`
	VerifyTimeout time.Duration `yaml:"verify_timeout" mapstructure:"verify_timeout"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors" mapstructure:"cors"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// RequestsPerWindow 每个窗口内每个客户端允许的生成请求数
	RequestsPerWindow int           `yaml:"requests_per_window" mapstructure:"requests_per_window"`
	Window            time.Duration `yaml:"window" mapstructure:"window"`
	KeyPrefix         string        `yaml:"key_prefix" mapstructure:"key_prefix"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}

// Provider 返回 name 对应的提供商配置，name 为空时取默认提供商
func (c *LLMConfig) Provider(name string) (string, ProviderConfig, bool) {
	if name == "" {
		name = c.DefaultProvider
	}
	p, ok := c.Providers[name]
	return name, p, ok
}
