// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitsun-api/internal/config"
	"fitsun-api/internal/interfaces/http/handler"
	"fitsun-api/internal/interfaces/http/middleware"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Health  *handler.HealthHandler
	Workout *handler.WorkoutHandler
}

// Router HTTP 路由器
type Router struct {
	engine  *gin.Engine
	cfg     *config.Config
	h       Handlers
	limiter middleware.RateLimiter
}

// New 创建路由器。limiter 为 nil 时不限流
func New(cfg *config.Config, h Handlers, limiter middleware.RateLimiter) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:  gin.New(),
		cfg:     cfg,
		h:       h,
		limiter: limiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	r.engine.Use(middleware.AccessLog(middleware.AccessLogConfig{
		SkipPaths: append([]string{r.cfg.Observability.Metrics.Path}, middleware.DefaultAccessLogSkipPaths...),
	}))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/", r.h.Health.Root)
	r.engine.GET("/ready", r.h.Health.Ready)
	r.engine.GET("/live", r.h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	api := r.engine.Group("/api")
	{
		api.GET("/health", r.h.Health.Health)

		rl := r.cfg.Security.RateLimit
		api.POST("/generate-workout",
			middleware.RateLimit(middleware.RateLimitConfig{
				Enabled:           rl.Enabled,
				RequestsPerWindow: rl.RequestsPerWindow,
				Window:            rl.Window,
				KeyPrefix:         rl.KeyPrefix,
			}, r.limiter),
			r.h.Workout.GenerateWorkout,
		)
	}
}
