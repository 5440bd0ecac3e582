package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLimiter struct {
	limit int
	seen  map[string]int
	err   error
}

func (f *fakeLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, int, error) {
	if f.err != nil {
		return false, 0, f.err
	}
	if f.seen == nil {
		f.seen = make(map[string]int)
	}
	if f.seen[key] >= limit {
		return false, 0, nil
	}
	f.seen[key]++
	return true, limit - f.seen[key], nil
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.POST("/api/generate-workout", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func post(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-workout", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitDeniesOverLimit(t *testing.T) {
	limiter := &fakeLimiter{}
	r := newEngine(RateLimit(RateLimitConfig{Enabled: true, RequestsPerWindow: 2, Window: time.Minute, KeyPrefix: "t"}, limiter))

	w := post(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get(RateLimitRemainingHeader))
	assert.Equal(t, "2", w.Header().Get(RateLimitLimitHeader))

	assert.Equal(t, http.StatusOK, post(r).Code)

	w = post(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, limiter.seen, RateLimitKey("t", "10.0.0.1", "/api/generate-workout"))
}

func TestRateLimitKey(t *testing.T) {
	assert.Equal(t, "fitsun:ratelimit:10.0.0.1:/api/generate-workout",
		RateLimitKey("fitsun:ratelimit", "10.0.0.1", "/api/generate-workout"))
}

func TestRateLimitFailsOpen(t *testing.T) {
	r := newEngine(RateLimit(RateLimitConfig{Enabled: true}, &fakeLimiter{err: errors.New("redis down")}))
	assert.Equal(t, http.StatusOK, post(r).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	limiter := &fakeLimiter{}
	r := newEngine(RateLimit(RateLimitConfig{Enabled: false, RequestsPerWindow: 1}, limiter))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, post(r).Code)
	}
	assert.Empty(t, limiter.seen)
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := post(r)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-workout", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	r := newEngine(CORS(CORSConfig{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/generate-workout", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
