package llm

import (
	"context"
	"time"

	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel/attribute"

	"fitsun-api/internal/domain/service"
	workflowport "fitsun-api/internal/workflow/port"
	"fitsun-api/pkg/logger"
	"fitsun-api/pkg/metrics"
	"fitsun-api/pkg/tracer"
)

// instrumented 为 TextGenerator 记录调用指标、日志与 span
type instrumented struct {
	next     workflowport.TextGenerator
	provider string
	model    string
}

func newInstrumented(next workflowport.TextGenerator, provider, model string) workflowport.TextGenerator {
	return &instrumented{next: next, provider: provider, model: model}
}

func (i *instrumented) Generate(ctx context.Context, msgs []*schema.Message) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.generate")
	defer span.End()
	workflow := service.WorkflowFromContext(ctx)
	span.SetAttributes(
		attribute.String("llm.workflow", workflow),
		attribute.String("llm.provider", i.provider),
		attribute.String("llm.model", i.model),
		attribute.Int("llm.messages", len(msgs)),
	)

	start := time.Now()
	text, err := i.next.Generate(ctx, msgs)
	elapsed := time.Since(start)

	metrics.LLMCallDuration.WithLabelValues(i.provider, i.model).Observe(elapsed.Seconds())
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(i.provider, i.model, "error").Inc()
		tracer.RecordError(span, err)
		logger.Error(ctx, "llm call failed", err,
			"workflow", workflow,
			"provider", i.provider,
			"model", i.model,
			"duration_ms", elapsed.Milliseconds(),
		)
		return "", err
	}

	metrics.LLMCallTotal.WithLabelValues(i.provider, i.model, "success").Inc()
	span.SetAttributes(attribute.Int("llm.output_chars", len(text)))
	logger.Debug(ctx, "llm call completed",
		"workflow", workflow,
		"provider", i.provider,
		"model", i.model,
		"duration_ms", elapsed.Milliseconds(),
		"output_chars", len(text),
	)
	return text, nil
}
