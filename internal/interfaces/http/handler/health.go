// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitsun-api/internal/config"
	"fitsun-api/internal/infrastructure/identity"
	"fitsun-api/internal/infrastructure/llm"
	"fitsun-api/internal/infrastructure/persistence/redis"
	"fitsun-api/internal/interfaces/http/dto"
	"fitsun-api/pkg/metrics"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	banner  string
	version string
	started time.Time
	now     func() time.Time

	redis         healthChecker
	identity      healthChecker
	llmConfigured func() bool
}

// NewHealthHandler 创建健康检查处理器。redisClient/identityClient 为 nil 表示未启用
func NewHealthHandler(cfg *config.Config, redisClient *redis.Client, identityClient *identity.Client, factory *llm.Factory) *HealthHandler {
	h := &HealthHandler{
		banner:  cfg.App.Banner,
		version: cfg.App.Version,
		started: time.Now(),
		now:     time.Now,
	}
	if redisClient != nil {
		h.redis = redisClient
	}
	if identityClient != nil {
		h.identity = identityClient
	}
	if factory != nil {
		h.llmConfigured = factory.Configured
	}
	return h
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Root 服务信息
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Message: h.banner,
		Status:  "running",
		Version: h.version,
	})
}

// Health 健康检查，返回当前时间与进程运行秒数
func (h *HealthHandler) Health(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: now.UTC().Format(timestampLayout),
		Uptime:    now.Sub(h.started).Seconds(),
	})
}

// Ready 就绪检查。Redis 与身份服务为可选依赖，故障时标记为 degraded，不影响就绪态；
// 默认 LLM 提供商未配置时不可就绪。
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"llm":      {Status: "ok"},
		"redis":    optionalCheck(ctx, "redis", h.redis),
		"identity": optionalCheck(ctx, "identity", h.identity),
	}

	ready := true
	if h.llmConfigured == nil || !h.llmConfigured() {
		checks["llm"] = &readinessCheck{Status: "missing", Error: "default llm provider not configured"}
		ready = false
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func optionalCheck(ctx context.Context, name string, checker healthChecker) *readinessCheck {
	if checker == nil {
		metrics.DependencyDegraded.WithLabelValues(name).Set(0)
		return &readinessCheck{Status: "disabled"}
	}

	start := time.Now()
	err := checker.HealthCheck(ctx)
	check := &readinessCheck{LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		metrics.DependencyDegraded.WithLabelValues(name).Set(1)
		check.Status = "degraded"
		check.Error = err.Error()
		return check
	}
	metrics.DependencyDegraded.WithLabelValues(name).Set(0)
	check.Status = "ok"
	return check
}

// Live 存活检查
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
