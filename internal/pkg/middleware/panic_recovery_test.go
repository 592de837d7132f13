package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.ZapLogger{Logger: zap.New(core)}, logs
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		wantType   string
	}{
		{name: "string panic", panicValue: "boom", wantType: "string"},
		{name: "error panic", panicValue: errors.New("nil map"), wantType: "*errors.errorString"},
		{name: "int panic", panicValue: 42, wantType: "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := observedLogger()
			e := echo.New()
			e.Use(RequestIDMiddleware())
			e.Use(PanicRecoveryWithZapMiddleware(zl))
			e.GET("/chats", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/chats", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "req-1", body["request_id"])

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantType, fields["panic_type"])
			assert.Equal(t, "/chats", fields["path"])
			assert.Equal(t, "req-1", fields["request_id"])
			assert.NotEmpty(t, fields["stack_trace"])
		})
	}
}

func TestPanicRecovery_StackSizeCapped(t *testing.T) {
	zl, logs := observedLogger()
	e := echo.New()
	e.Use(PanicRecoveryMiddleware(PanicRecoveryConfig{StackSize: 64, Logger: zl}))
	e.GET("/", func(c echo.Context) error { panic("boom") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].ContextMap()["stack_trace"], 64)
}

func TestPanicRecovery_NoPanicPassesThrough(t *testing.T) {
	zl, logs := observedLogger()
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(zl))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, logs.Len())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(DefaultPanicRecoveryConfig())
	})
}
