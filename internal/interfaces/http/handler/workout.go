package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsun-api/internal/domain/entity"
	"fitsun-api/internal/interfaces/http/dto"
	apperrors "fitsun-api/pkg/errors"
	"fitsun-api/pkg/logger"
)

const userProfileField = "userProfile"

// WorkoutGenerator 训练计划生成用例
type WorkoutGenerator interface {
	Generate(ctx context.Context, userID string, profile *entity.UserProfile) (entity.PlanDocument, error)
}

// WorkoutHandler 训练计划处理器
type WorkoutHandler struct {
	generator    WorkoutGenerator
	maxBodyBytes int64
}

// NewWorkoutHandler 创建训练计划处理器；maxBodyBytes <= 0 表示不限制
func NewWorkoutHandler(generator WorkoutGenerator, maxBodyBytes int64) *WorkoutHandler {
	return &WorkoutHandler{generator: generator, maxBodyBytes: maxBodyBytes}
}

// GenerateWorkout 生成训练计划
// @Summary 生成训练计划
// @Tags Workout
// @Accept json
// @Produce json
// @Param body body dto.GenerateWorkoutRequest true "用户画像"
// @Success 200 {object} dto.GenerateWorkoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate-workout [post]
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req dto.GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isMissingProfile(err) {
			h.writeError(c, apperrors.ErrProfileRequired)
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	plan, err := h.generator.Generate(c.Request.Context(), req.UserID, req.UserProfile)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateWorkoutResponse{
		Success:        true,
		WorkoutProgram: plan,
	})
}

// isMissingProfile 空请求体或 userProfile 不是对象（如 ""、false、0）都视为缺少画像
func isMissingProfile(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr) && typeErr.Field == userProfileField
}

func (h *WorkoutHandler) writeError(c *gin.Context, err error) {
	if appErr := apperrors.AsAppError(err); appErr != nil && appErr.Code == apperrors.CodeInvalidParam {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: appErr.Message})
		return
	}

	_ = c.Error(err)
	logger.Error(c.Request.Context(), "workout generation failed", err)

	details := err.Error()
	if appErr := apperrors.AsAppError(err); appErr != nil {
		details = appErr.Cause()
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   apperrors.ErrGenerationFailed.Message,
		Details: details,
	})
}
