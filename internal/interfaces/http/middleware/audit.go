// Package middleware 提供 HTTP 中间件
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fitsun-api/pkg/logger"
)

// AccessLogConfig 访问日志配置
type AccessLogConfig struct {
	// SkipPaths 不记录日志的路径
	SkipPaths []string
}

// DefaultAccessLogSkipPaths 默认跳过记录的探针路径
var DefaultAccessLogSkipPaths = []string{
	"/ready",
	"/live",
	"/metrics",
}

// AccessLog 访问日志中间件
func AccessLog(cfg AccessLogConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if c.Writer.Status() >= 500 {
			logger.Warn(c.Request.Context(), "api request", fields...)
			return
		}
		logger.Info(c.Request.Context(), "api request", fields...)
	}
}
