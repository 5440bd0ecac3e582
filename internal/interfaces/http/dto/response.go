// Package dto 提供 HTTP 层数据传输对象
package dto

import "fitsun-api/internal/domain/entity"

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RootResponse 服务信息
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // 秒
}

// GenerateWorkoutResponse 训练计划生成成功响应
type GenerateWorkoutResponse struct {
	Success        bool                `json:"success"`
	WorkoutProgram entity.PlanDocument `json:"workoutProgram"`
}
