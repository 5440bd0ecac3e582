package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", WorkflowFromContext(ctx))
	assert.Equal(t, ctx, WithWorkflow(ctx, "  "))

	ctx = WithWorkflow(ctx, " "+WorkflowWorkoutPlan+" ")
	assert.Equal(t, WorkflowWorkoutPlan, WorkflowFromContext(ctx))
}
