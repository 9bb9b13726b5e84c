package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zestagio/pallet-town/internal/middlewares"
)

func TestNewRequestID(t *testing.T) {
	e := echo.New()
	e.Use(middlewares.NewRequestID())
	e.GET("/", func(eCtx echo.Context) error {
		return eCtx.NoContent(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(echo.HeaderXRequestID)
		_, err := ulid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "from-client")

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "from-client", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestNewRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	e := echo.New()
	e.Use(middlewares.NewRequestID(), middlewares.NewRequestLogger(zap.New(core)))
	e.GET("/ok", func(eCtx echo.Context) error {
		return eCtx.String(http.StatusOK, "pallet")
	})
	e.GET("/part", func(eCtx echo.Context) error {
		return eCtx.String(http.StatusPartialContent, "pa")
	})
	e.GET("/moved", func(eCtx echo.Context) error {
		return eCtx.Redirect(http.StatusMovedPermanently, "/ok")
	})
	e.GET("/boom", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	cases := []struct {
		path    string
		level   zapcore.Level
		message string
	}{
		{path: "/ok", level: zapcore.DebugLevel, message: "asset served"},
		{path: "/part", level: zapcore.DebugLevel, message: "asset range served"},
		{path: "/moved", level: zapcore.DebugLevel, message: "redirect"},
		{path: "/missing", level: zapcore.DebugLevel, message: "asset not found"},
		{path: "/boom", level: zapcore.ErrorLevel, message: "server error"},
	}

	ids := make([]string, 0, len(cases))
	for _, tt := range cases {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.path == "/part" {
			req.Header.Set("Range", "bytes=0-1")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		ids = append(ids, rec.Header().Get(echo.HeaderXRequestID))
	}

	entries := logs.AllUntimed()
	require.Len(t, entries, len(cases))

	for i, tt := range cases {
		t.Run(tt.path, func(t *testing.T) {
			entry := entries[i]
			fields := entry.ContextMap()

			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, tt.path, fields["asset"])
			assert.NotEmpty(t, ids[i])
			assert.Equal(t, ids[i], fields["request_id"], "every trace carries the request id")
		})
	}

	assert.Equal(t, "bytes=0-1", entries[1].ContextMap()["range"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["bytes_out"])
	assert.Equal(t, "/ok", entries[2].ContextMap()["location"])
}

func TestNewRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	e := echo.New()
	e.Use(middlewares.NewRequestID(), middlewares.NewRecovery(zap.New(core)))
	e.GET("/panic", func(_ echo.Context) error {
		panic("sprite sheet missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	recovered := logs.FilterMessage("panic recovered").AllUntimed()
	require.Len(t, recovered, 1)

	fields := recovered[0].ContextMap()
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), fields["request_id"])
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.Equal(t, "/panic", fields["asset"])
	assert.NotEmpty(t, fields["stack"])
}
