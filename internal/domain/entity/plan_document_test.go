package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentAttachMetadataFormatsUTCMillis(t *testing.T) {
	loc := time.FixedZone("TRT", 3*3600)
	doc := PlanDocument{"programName": "P", "userId": "from-model", "createdAt": "yesterday"}

	doc.AttachMetadata("u1", time.Date(2026, 10, 19, 15, 4, 5, 123456789, loc))

	assert.Equal(t, "u1", doc[FieldUserID])
	assert.Equal(t, "2026-10-19T12:04:05.123Z", doc[FieldCreatedAt])
	assert.Equal(t, "P", doc.ProgramName())
}

func TestDocumentAttachMetadataEmptyUserRemovesField(t *testing.T) {
	doc := PlanDocument{"userId": "spoofed"}
	doc.AttachMetadata("", time.Now())

	_, ok := doc[FieldUserID]
	assert.False(t, ok)
	assert.NotEmpty(t, doc[FieldCreatedAt])
}

func TestDocumentAccessorsTolerateOddShapes(t *testing.T) {
	doc := PlanDocument{"programName": 7, "weeklySchedule": "daily"}
	assert.Empty(t, doc.ProgramName())
	assert.Zero(t, doc.DayCount())

	doc = PlanDocument{"weeklySchedule": []any{map[string]any{}, map[string]any{}}}
	assert.Equal(t, 2, doc.DayCount())
}

func TestWorkoutPlanDocumentRoundTrips(t *testing.T) {
	p := &WorkoutPlan{
		ProgramName:    "Başlangıç",
		DurationWeeks:  4,
		Difficulty:     DifficultyBeginner,
		WeeklySchedule: []DaySchedule{day("Monday", 4), day("Wednesday", 4), day("Friday", 4)},
	}

	doc, err := p.Document()
	require.NoError(t, err)
	assert.Equal(t, "Başlangıç", doc.ProgramName())
	assert.Equal(t, 3, doc.DayCount())
	assert.NotContains(t, doc, FieldUserID)

	want, err := json.Marshal(p)
	require.NoError(t, err)
	got, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}
