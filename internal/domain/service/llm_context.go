// Package service 提供跨层共享的领域上下文辅助
package service

import (
	"context"
	"strings"
)

type llmCtxKey string

const llmCtxKeyWorkflow llmCtxKey = "llm_workflow"

// WorkflowWorkoutPlan 训练计划生成工作流
const WorkflowWorkoutPlan = "workout_plan"

// WithWorkflow 标记当前 LLM 调用所属的工作流，用于日志与追踪
func WithWorkflow(ctx context.Context, workflow string) context.Context {
	w := strings.TrimSpace(workflow)
	if w == "" {
		return ctx
	}
	return context.WithValue(ctx, llmCtxKeyWorkflow, w)
}

func WorkflowFromContext(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	s, ok := ctx.Value(llmCtxKeyWorkflow).(string)
	if !ok || s == "" {
		return "unknown"
	}
	return s
}
