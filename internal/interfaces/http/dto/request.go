package dto

import "fitsun-api/internal/domain/entity"

// GenerateWorkoutRequest 训练计划生成请求
type GenerateWorkoutRequest struct {
	UserID      string              `json:"userId"`
	UserProfile *entity.UserProfile `json:"userProfile"`
}
