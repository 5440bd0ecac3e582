// Package entity 定义领域实体
package entity

import "fmt"

// Difficulty 计划难度
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid 是否为已知难度
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// 结构良好的计划的约束
const (
	MinScheduleDays     = 3
	MinExercisesPerDay  = 4
	MaxExercisesPerDay  = 8
	MinDurationWeeks    = 1
	createdAtTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Exercise 单个动作
type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Weight      string `json:"weight"` // 自由格式，如 "bodyweight"、"5-10kg"
	RestSeconds int    `json:"restSeconds"`
	Notes       string `json:"notes"`
}

// DaySchedule 单日训练安排
type DaySchedule struct {
	DayName           string     `json:"dayName"`
	Focus             string     `json:"focus"`
	EstimatedDuration int        `json:"estimatedDuration"` // 分钟
	Notes             string     `json:"notes"`
	Exercises         []Exercise `json:"exercises"`
}

// WorkoutPlan 训练计划
// UserID/CreatedAt 为请求级元数据，由 PlanDocument.AttachMetadata 写入响应
type WorkoutPlan struct {
	ProgramName    string        `json:"programName"`
	Description    string        `json:"description"`
	DurationWeeks  int           `json:"durationWeeks"`
	Difficulty     Difficulty    `json:"difficulty"`
	WeeklySchedule []DaySchedule `json:"weeklySchedule"`

	UserID    string `json:"userId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Validate 校验计划结构是否良好
func (p *WorkoutPlan) Validate() error {
	if p == nil {
		return fmt.Errorf("plan is nil")
	}
	if p.DurationWeeks < MinDurationWeeks {
		return fmt.Errorf("durationWeeks must be >= %d, got %d", MinDurationWeeks, p.DurationWeeks)
	}
	if !p.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", p.Difficulty)
	}
	if len(p.WeeklySchedule) < MinScheduleDays {
		return fmt.Errorf("weeklySchedule must have at least %d days, got %d", MinScheduleDays, len(p.WeeklySchedule))
	}
	for i, day := range p.WeeklySchedule {
		n := len(day.Exercises)
		if n < MinExercisesPerDay || n > MaxExercisesPerDay {
			return fmt.Errorf("weeklySchedule[%d] (%s) must have %d-%d exercises, got %d",
				i, day.DayName, MinExercisesPerDay, MaxExercisesPerDay, n)
		}
	}
	return nil
}
