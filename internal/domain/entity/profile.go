package entity

// Goal 训练目标
type Goal string

// 已知训练目标，其它取值按 general_fitness 处理
const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalEndurance      Goal = "endurance"
	GoalGeneralFitness Goal = "general_fitness"
)

// UserProfile 用户画像，所有字段可选
// 数值字段为 0、字符串为空、器材列表为空均视为未填写
type UserProfile struct {
	Age                float64  `json:"age,omitempty"`
	Height             float64  `json:"height,omitempty"` // cm
	Weight             float64  `json:"weight,omitempty"` // kg
	Gender             string   `json:"gender,omitempty"`
	Goal               Goal     `json:"goal,omitempty"`
	FitnessLevel       string   `json:"fitnessLevel,omitempty"`
	WorkoutLocation    string   `json:"workoutLocation,omitempty"`
	AvailableEquipment []string `json:"availableEquipment,omitempty"`
}

// GoalOrEmpty 空画像安全地返回目标
func (p *UserProfile) GoalOrEmpty() Goal {
	if p == nil {
		return ""
	}
	return p.Goal
}
