package workout

import (
	"strconv"
	"strings"

	"fitsun-api/internal/domain/entity"
)

// MissingFieldPlaceholder 未填写字段在提示词中的占位文本
const MissingFieldPlaceholder = "Belirtilmemiş"

// promptVars 将画像渲染为模板变量。每个字段都会出现，未填写时使用占位文本。
func promptVars(p *entity.UserProfile) map[string]any {
	return map[string]any{
		"age":                 numberOrPlaceholder(p.Age),
		"height":              numberOrPlaceholder(p.Height),
		"weight":              numberOrPlaceholder(p.Weight),
		"gender":              textOrPlaceholder(p.Gender),
		"goal":                textOrPlaceholder(string(p.Goal)),
		"fitness_level":       textOrPlaceholder(p.FitnessLevel),
		"workout_location":    textOrPlaceholder(p.WorkoutLocation),
		"available_equipment": textOrPlaceholder(strings.Join(p.AvailableEquipment, ", ")),
	}
}

func numberOrPlaceholder(v float64) string {
	if v == 0 {
		return MissingFieldPlaceholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func textOrPlaceholder(s string) string {
	if s == "" {
		return MissingFieldPlaceholder
	}
	return s
}
