package workout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsun-api/internal/domain/entity"
	workflowprompt "fitsun-api/internal/workflow/prompt"
)

func TestPromptVarsPlaceholders(t *testing.T) {
	vars := promptVars(&entity.UserProfile{Goal: entity.GoalEndurance})

	assert.Equal(t, "endurance", vars["goal"])
	for _, key := range []string{"age", "height", "weight", "gender", "fitness_level", "workout_location", "available_equipment"} {
		assert.Equal(t, MissingFieldPlaceholder, vars[key], key)
	}
}

func TestPromptVarsFormatsValues(t *testing.T) {
	vars := promptVars(&entity.UserProfile{
		Age:                30,
		Height:             175.5,
		Weight:             70,
		Gender:             "male",
		FitnessLevel:       "beginner",
		WorkoutLocation:    "home",
		AvailableEquipment: []string{"dumbbells", "mat"},
	})

	assert.Equal(t, "30", vars["age"])
	assert.Equal(t, "175.5", vars["height"])
	assert.Equal(t, "70", vars["weight"])
	assert.Equal(t, "dumbbells, mat", vars["available_equipment"])
	assert.Equal(t, MissingFieldPlaceholder, vars["goal"])
}

func TestRenderedPromptContainsProfile(t *testing.T) {
	msgs, err := workflowprompt.NewRegistry().Render(context.Background(), workflowprompt.PromptWorkoutPlanV1,
		promptVars(&entity.UserProfile{Age: 25, AvailableEquipment: []string{"kettlebell"}}))
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	user := msgs[1].Content
	assert.Contains(t, user, "- Yaş: 25")
	assert.Contains(t, user, "- Boy: Belirtilmemiş cm")
	assert.Contains(t, user, "- Mevcut Ekipmanlar: kettlebell")
	assert.Contains(t, user, `"programName": "Program Adı"`)
}
