package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"apparelstore/internal/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRequestLogger(t *testing.T) {
	log, logs := logger.Observed(zapcore.DebugLevel)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	t.Run("success is logged at info", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?page=1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "/ok", ctx["path"])
		assert.Equal(t, "page=1", ctx["query"])
		assert.EqualValues(t, http.StatusOK, ctx["status"])
	})

	t.Run("handler error status is recorded once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])
	})

	t.Run("unknown route is a warning", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})
}
