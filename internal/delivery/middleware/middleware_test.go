package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio/config"
	deliverycontext "studio/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generates when absent", incoming: "", keep: false},
		{name: "keeps client id", incoming: "req-123", keep: true},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			m := NewRequestIDMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx, fromEcho string
			err := m.Process(func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, fromEcho)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.LessOrEqual(t, len(got), maxRequestIDLength)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		path      string
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
	}{
		{
			name:      "logs api request",
			path:      "/api/services",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "level=INFO",
		},
		{
			name:    "skips healthy probe",
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: false,
		},
		{
			name:      "logs probe in debug",
			debug:     true,
			path:      "/health",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "level=INFO",
		},
		{
			name:      "warns on client error",
			path:      "/api/orders",
			handler:   func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLog:   true,
			wantLevel: "level=WARN",
		},
		{
			name:      "errors on server error",
			path:      "/api/orders",
			handler:   func(echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError) },
			wantLog:   true,
			wantLevel: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(logger, cfg)

			e := echo.New()
			e.Use(m.Handle)
			e.GET(tt.path, tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			out := buf.String()
			if !tt.wantLog {
				assert.Empty(t, out)

				return
			}
			assert.Contains(t, out, "HTTP Request")
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "route="+tt.path)
		})
	}
}
