//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"fitsun-api/internal/config"
	"fitsun-api/internal/infrastructure/llm"
	"fitsun-api/internal/interfaces/http/handler"
	"fitsun-api/internal/interfaces/http/router"
	workflowprompt "fitsun-api/internal/workflow/prompt"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		InfraSet,
		WorkoutSet,
		RouterSet,
	)
	return nil, nil, nil
}

// InfraSet 基础设施提供者集合（Redis/身份服务均为可选依赖）
var InfraSet = wire.NewSet(
	ProvideRedisClientOptional,
	ProvideRateLimiter,
	ProvideIdentityClientOptional,
	llm.NewFactory,
)

// WorkoutSet 训练计划生成提供者集合
var WorkoutSet = wire.NewSet(
	workflowprompt.NewRegistry,
	ProvideExtractor,
	ProvideWorkoutGenerator,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	ProvideWorkoutHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
