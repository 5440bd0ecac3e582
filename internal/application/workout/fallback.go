package workout

import "fitsun-api/internal/domain/entity"

// FallbackDurationWeeks 兜底计划周数
const FallbackDurationWeeks = 4

type planHeader struct {
	programName string
	description string
	difficulty  entity.Difficulty
}

var fallbackHeaders = map[entity.Goal]planHeader{
	entity.GoalWeightLoss: {
		programName: "Kilo Verme Programı",
		description: "Kardiyovasküler sağlığı artıran ve kalori yakımını destekleyen program",
		difficulty:  entity.DifficultyBeginner,
	},
	entity.GoalMuscleGain: {
		programName: "Kas Kazanma Programı",
		description: "Kas kütlesi artırımına odaklanan güç antrenmanı programı",
		difficulty:  entity.DifficultyIntermediate,
	},
	entity.GoalEndurance: {
		programName: "Dayanıklılık Programı",
		description: "Kardiyovasküler dayanıklılığı artıran program",
		difficulty:  entity.DifficultyBeginner,
	},
	entity.GoalGeneralFitness: {
		programName: "Genel Fitness Programı",
		description: "Genel sağlık ve fitness seviyesini artıran dengeli program",
		difficulty:  entity.DifficultyBeginner,
	},
}

// BuildFallback 构建兜底计划。纯函数，总是返回结构良好的计划。
// 只有计划头（名称/描述/难度）随目标变化，周计划模板固定。
func BuildFallback(profile *entity.UserProfile) *entity.WorkoutPlan {
	header, ok := fallbackHeaders[profile.GoalOrEmpty()]
	if !ok {
		header = fallbackHeaders[entity.GoalGeneralFitness]
	}

	return &entity.WorkoutPlan{
		ProgramName:    header.programName,
		Description:    header.description,
		DurationWeeks:  FallbackDurationWeeks,
		Difficulty:     header.difficulty,
		WeeklySchedule: fallbackSchedule(),
	}
}

// fallbackSchedule 每次返回新分配的切片，调用方可自由修改
func fallbackSchedule() []entity.DaySchedule {
	return []entity.DaySchedule{
		{
			DayName:           "Monday",
			Focus:             "Upper Body",
			EstimatedDuration: 45,
			Notes:             "Üst vücut güçlendirme",
			Exercises: []entity.Exercise{
				{Name: "Push-ups", Sets: 3, Reps: 12, Weight: "bodyweight", RestSeconds: 60, Notes: "Tam hareket açıklığında"},
				{Name: "Dumbbell Rows", Sets: 3, Reps: 10, Weight: "5-10kg", RestSeconds: 90, Notes: "Kontrollü hareket"},
				{Name: "Shoulder Press", Sets: 3, Reps: 8, Weight: "5-8kg", RestSeconds: 90, Notes: "Omuz stabilitesi"},
				{Name: "Tricep Dips", Sets: 3, Reps: 10, Weight: "bodyweight", RestSeconds: 60, Notes: "Sandalyede"},
			},
		},
		{
			DayName:           "Wednesday",
			Focus:             "Lower Body",
			EstimatedDuration: 45,
			Notes:             "Alt vücut güçlendirme",
			Exercises: []entity.Exercise{
				{Name: "Squats", Sets: 3, Reps: 15, Weight: "bodyweight", RestSeconds: 60, Notes: "Dizler ayak parmaklarını geçmesin"},
				{Name: "Lunges", Sets: 3, Reps: 12, Weight: "bodyweight", RestSeconds: 60, Notes: "Her bacak için"},
				{Name: "Calf Raises", Sets: 3, Reps: 20, Weight: "bodyweight", RestSeconds: 45, Notes: "Yavaş ve kontrollü"},
				{Name: "Glute Bridges", Sets: 3, Reps: 15, Weight: "bodyweight", RestSeconds: 60, Notes: "Kalça kaslarını sık"},
			},
		},
		{
			DayName:           "Friday",
			Focus:             "Full Body",
			EstimatedDuration: 50,
			Notes:             "Tam vücut antrenmanı",
			Exercises: []entity.Exercise{
				{Name: "Burpees", Sets: 3, Reps: 8, Weight: "bodyweight", RestSeconds: 90, Notes: "Tam hareket"},
				{Name: "Mountain Climbers", Sets: 3, Reps: 20, Weight: "bodyweight", RestSeconds: 60, Notes: "Hızlı tempo"},
				{Name: "Plank", Sets: 3, Reps: 1, Weight: "bodyweight", RestSeconds: 60, Notes: "30-45 saniye"},
				{Name: "Jumping Jacks", Sets: 3, Reps: 30, Weight: "bodyweight", RestSeconds: 45, Notes: "Kardiyovasküler"},
			},
		},
	}
}
