package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/eyobht/project_finance_app/internal/middleware"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestStructuredLoggingMiddleware_InjectsRequestLogger(t *testing.T) {
	baseLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var fromGinCtx, fromReqCtx *slog.Logger
	r := newTestEngine()
	r.Use(middleware.StructuredLoggingMiddleware(baseLogger))
	r.GET("/ping", func(c *gin.Context) {
		fromGinCtx = middleware.GetLoggerFromContext(c)
		fromReqCtx = middleware.GetLoggerFromCtx(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	require.NotNil(t, fromGinCtx)
	assert.NotSame(t, slog.Default(), fromGinCtx, "handler sees the request-scoped logger, not the default")
	assert.Same(t, fromGinCtx, fromReqCtx, "both retrieval paths resolve the same logger")
}

func TestGetLoggerFromContext_FallsBackToDefault(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Same(t, slog.Default(), middleware.GetLoggerFromContext(c))
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	rate := limiter.Rate{Period: time.Minute, Limit: 2}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	r := newTestEngine()
	r.Use(middleware.RateLimit(ipLimiter))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	statuses := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
