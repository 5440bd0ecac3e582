package wire

import (
	"context"

	"fitsun-api/internal/application/workout"
	"fitsun-api/internal/config"
	"fitsun-api/internal/infrastructure/identity"
	"fitsun-api/internal/infrastructure/llm"
	"fitsun-api/internal/infrastructure/persistence/redis"
	"fitsun-api/internal/interfaces/http/handler"
	"fitsun-api/internal/interfaces/http/middleware"
	workflowprompt "fitsun-api/internal/workflow/prompt"
	"fitsun-api/pkg/logger"
	"fitsun-api/pkg/metrics"
)

// ProvideRedisClientOptional 未启用或不可达时返回 nil，不阻塞启动
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Cache.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(ctx, &cfg.Cache.Redis)
	if err != nil {
		metrics.DependencyDegraded.WithLabelValues("redis").Set(1)
		logger.Warn(ctx, "redis not available, rate limiting disabled", "error", err.Error())
		return nil, func() {}, nil
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// ProvideRateLimiter Redis 不可用时返回 nil 接口（中间件放行）
func ProvideRateLimiter(cfg *config.Config, client *redis.Client) middleware.RateLimiter {
	if client == nil {
		if cfg.Security.RateLimit.Enabled {
			logger.Warn(context.Background(), "rate limit enabled but redis is not configured, requests will not be limited")
		}
		return nil
	}
	return redis.NewRateLimiter(client)
}

// ProvideIdentityClientOptional 构建服务账号凭据；失败时以降级模式运行
func ProvideIdentityClientOptional(ctx context.Context, cfg *config.Config) *identity.Client {
	if !cfg.Identity.Enabled {
		return nil
	}
	client, err := identity.New(cfg.Identity)
	if err != nil {
		metrics.DependencyDegraded.WithLabelValues("identity").Set(1)
		logger.Error(ctx, "identity credentials initialization failed, running degraded", err)
		return nil
	}

	if cfg.Identity.VerifyOnStart {
		if err := client.HealthCheck(ctx); err != nil {
			metrics.DependencyDegraded.WithLabelValues("identity").Set(1)
			logger.Error(ctx, "identity credentials verification failed, running degraded", err,
				"client_email", client.ClientEmail())
			return client
		}
	}

	logger.Info(ctx, "identity credentials initialized",
		"project_id", client.ProjectID(),
		"verified", cfg.Identity.VerifyOnStart,
	)
	return client
}

// ProvideExtractor 提供载荷提取器
func ProvideExtractor(cfg *config.Config) *workout.Extractor {
	return workout.NewExtractor(cfg.Workout.ExtractionMode, cfg.Workout.StrictValidation)
}

// ProvideWorkoutGenerator 提供训练计划生成器
func ProvideWorkoutGenerator(cfg *config.Config, factory *llm.Factory, prompts *workflowprompt.Registry, extractor *workout.Extractor) *workout.Generator {
	return workout.NewGenerator(factory, prompts, extractor, workout.Options{
		Provider:                cfg.Workout.Provider,
		Timeout:                 cfg.Workout.Timeout,
		FallbackOnUpstreamError: cfg.Workout.FallbackOnUpstreamError,
		RawLogMaxRunes:          cfg.Workout.RawLogMaxRunes,
	})
}

// ProvideWorkoutHandler 提供训练计划处理器
func ProvideWorkoutHandler(cfg *config.Config, generator *workout.Generator) *handler.WorkoutHandler {
	return handler.NewWorkoutHandler(generator, cfg.Server.HTTP.MaxBodyBytes)
}
