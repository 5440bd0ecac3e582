package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fitsun-api/internal/config"
	"fitsun-api/internal/domain/entity"
	"fitsun-api/internal/interfaces/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type planGenerator struct{}

func (planGenerator) Generate(_ context.Context, userID string, _ *entity.UserProfile) (entity.PlanDocument, error) {
	plan := entity.PlanDocument{"programName": "P"}
	plan.AttachMetadata(userID, time.Now())
	return plan, nil
}

type denyAfter struct{ n int }

func (d *denyAfter) Allow(context.Context, string, int, time.Duration) (bool, int, error) {
	if d.n <= 0 {
		return false, 0, nil
	}
	d.n--
	return true, d.n, nil
}

func testRouter(limiter *denyAfter) *gin.Engine {
	cfg := &config.Config{
		App: config.AppConfig{Name: "fitsun-api", Version: "1.0.0", Banner: "FitSun Backend API"},
	}
	cfg.Observability.Metrics = config.MetricsConfig{Enabled: true, Path: "/metrics"}
	cfg.Security.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerWindow: 1, Window: time.Minute, KeyPrefix: "t"}

	h := Handlers{
		Health:  handler.NewHealthHandler(cfg, nil, nil, nil),
		Workout: handler.NewWorkoutHandler(planGenerator{}, 1<<20),
	}
	if limiter == nil {
		return New(cfg, h, nil).Engine()
	}
	return New(cfg, h, limiter).Engine()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	r := testRouter(nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/health", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/live", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/unknown", "").Code)

	w := do(r, http.MethodPost, "/api/generate-workout", `{"userId":"u1","userProfile":{}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGenerateIsRateLimited(t *testing.T) {
	r := testRouter(&denyAfter{n: 1})

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/generate-workout", `{"userProfile":{}}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/generate-workout", `{"userProfile":{}}`).Code)
	// 健康检查不受限流影响
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/health", "").Code)
}
