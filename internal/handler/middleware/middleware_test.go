//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
	"room-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	engine := newEngine()
	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("caller supplied id is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil,
			httptest.Header{Key: "X-Request-ID", Value: "abc-123"})

		assert.Equal(t, "abc-123", seen)
		httptest.AssertHeader(t, rec, "X-Request-ID", "abc-123")
	})
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("disk on fire"), "Internal error", nil)
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/fail", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
	assert.Contains(t, rec.Body.String(), `"requestId"`)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestRequireJSON(t *testing.T) {
	engine := newEngine()
	engine.POST("/echo", middleware.RequireJSON(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("json body passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/echo", map[string]any{"a": 1})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other content types are rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/echo", "a=1",
			httptest.Header{Key: "Content-Type", Value: "application/x-www-form-urlencoded"})
		httptest.AssertErrorResponse(t, rec, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	})
}
