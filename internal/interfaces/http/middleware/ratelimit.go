package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitsun-api/pkg/logger"
	"fitsun-api/pkg/metrics"
)

// 限流响应头
const (
	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// Enabled 是否启用限流
	Enabled bool
	// RequestsPerWindow 每个窗口内每个客户端允许的请求数
	RequestsPerWindow int
	// Window 滑动窗口长度
	Window time.Duration
	// KeyPrefix Redis Key 前缀
	KeyPrefix string
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, err error)
}

// RateLimit 按客户端 IP 与路由限流。限流器故障时放行。
func RateLimit(cfg RateLimitConfig, limiter RateLimiter) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	if cfg.RequestsPerWindow <= 0 {
		cfg.RequestsPerWindow = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ratelimit"
	}
	limit := strconv.Itoa(cfg.RequestsPerWindow)

	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		key := RateLimitKey(cfg.KeyPrefix, c.ClientIP(), path)

		allowed, remaining, err := limiter.Allow(c.Request.Context(), key, cfg.RequestsPerWindow, cfg.Window)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		c.Header(RateLimitLimitHeader, limit)
		c.Header(RateLimitRemainingHeader, strconv.Itoa(remaining))

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(path).Inc()
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}

// RateLimitKey 构建限流键：prefix:client:path
func RateLimitKey(prefix, client, path string) string {
	return prefix + ":" + client + ":" + path
}
