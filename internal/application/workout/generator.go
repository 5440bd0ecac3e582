// Package workout 实现训练计划生成：提示词渲染、模型调用、载荷提取与兜底
package workout

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fitsun-api/internal/domain/entity"
	"fitsun-api/internal/domain/service"
	wfnode "fitsun-api/internal/workflow/node"
	workflowport "fitsun-api/internal/workflow/port"
	workflowprompt "fitsun-api/internal/workflow/prompt"
	apperrors "fitsun-api/pkg/errors"
	"fitsun-api/pkg/logger"
	"fitsun-api/pkg/metrics"
	"fitsun-api/pkg/tracer"
)

// 计划来源
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Options 生成器配置
type Options struct {
	// Provider LLM 提供商名称，为空时使用默认提供商
	Provider string
	// Timeout 单次生成调用超时，<=0 表示不设超时
	Timeout time.Duration
	// FallbackOnUpstreamError 生成调用失败时返回兜底计划而不是错误
	FallbackOnUpstreamError bool
	// RawLogMaxRunes 解析失败时日志中原始输出的最大字符数
	RawLogMaxRunes int
}

// Generator 训练计划生成编排器。
// 每个请求只调用一次文本生成服务，不重试；解析失败时使用兜底计划。
type Generator struct {
	factory   workflowport.TextGeneratorFactory
	prompts   *workflowprompt.Registry
	extractor *Extractor
	opts      Options
	now       func() time.Time
}

// NewGenerator 创建生成器
func NewGenerator(
	factory workflowport.TextGeneratorFactory,
	prompts *workflowprompt.Registry,
	extractor *Extractor,
	opts Options,
) *Generator {
	return &Generator{
		factory:   factory,
		prompts:   prompts,
		extractor: extractor,
		opts:      opts,
		now:       time.Now,
	}
}

// Generate 为用户生成训练计划，返回的计划已附带 userId 与 createdAt
func (g *Generator) Generate(ctx context.Context, userID string, profile *entity.UserProfile) (entity.PlanDocument, error) {
	if profile == nil {
		return nil, apperrors.ErrProfileRequired
	}

	start := time.Now()
	ctx = logger.WithContext(ctx, logger.UserIDKey, userID)
	ctx = service.WithWorkflow(ctx, service.WorkflowWorkoutPlan)
	ctx, span := tracer.Start(ctx, "workout.generate")
	defer span.End()
	span.SetAttributes(attribute.String("workout.goal", string(profile.Goal)))

	plan, source, err := g.generate(ctx, profile)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, err
	}

	plan.AttachMetadata(userID, g.now())

	span.SetAttributes(attribute.String("workout.source", source))
	metrics.WorkoutPlansTotal.WithLabelValues(source).Inc()
	metrics.WorkoutGenerationDuration.Observe(time.Since(start).Seconds())
	logger.Info(ctx, "workout plan generated",
		"source", source,
		"program_name", plan.ProgramName(),
		"days", plan.DayCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return plan, nil
}

func (g *Generator) generate(ctx context.Context, profile *entity.UserProfile) (entity.PlanDocument, string, error) {
	text, err := g.callModel(ctx, profile)
	if err != nil {
		if !g.opts.FallbackOnUpstreamError {
			return nil, "", err
		}
		logger.Warn(ctx, "text generation failed, using fallback plan", "error", err.Error())
		return g.fallback(profile)
	}

	plan, err := g.extractor.Extract(text)
	if err != nil {
		decodeErr := apperrors.ErrPlanDecode.WithError(err)
		reason, _ := wfnode.IsExtractionError(decodeErr)
		metrics.WorkoutExtractionFailures.WithLabelValues(reason).Inc()
		trace.SpanFromContext(ctx).AddEvent("plan.decode_failed", trace.WithAttributes(
			attribute.String("error.code", string(decodeErr.Code)),
			attribute.String("reason", reason),
		))
		logger.Error(ctx, "failed to parse generated workout plan", decodeErr,
			"code", decodeErr.Code,
			"reason", reason,
			"raw_response", wfnode.TruncateForLog(text, g.opts.RawLogMaxRunes),
		)
		return g.fallback(profile)
	}
	return plan, SourceLLM, nil
}

func (g *Generator) fallback(profile *entity.UserProfile) (entity.PlanDocument, string, error) {
	doc, err := BuildFallback(profile).Document()
	if err != nil {
		return nil, "", apperrors.ErrGenerationFailed.WithError(err)
	}
	return doc, SourceFallback, nil
}

// callModel 渲染提示词并调用一次文本生成服务
func (g *Generator) callModel(ctx context.Context, profile *entity.UserProfile) (string, error) {
	msgs, err := g.prompts.Render(ctx, workflowprompt.PromptWorkoutPlanV1, promptVars(profile))
	if err != nil {
		return "", apperrors.ErrGenerationFailed.WithError(err)
	}

	gen, err := g.factory.Get(ctx, g.opts.Provider)
	if err != nil {
		return "", apperrors.ErrLLMProvider.WithError(err)
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	text, err := gen.Generate(ctx, msgs)
	if err != nil {
		return "", apperrors.ErrLLMProvider.WithError(err)
	}
	return text, nil
}
