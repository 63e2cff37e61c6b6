package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"
	domainerrors "orderguard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"client id reused", "req-from-client", "req-from-client"},
		{"missing id generated", "", "generated-id"},
		{"oversized id replaced", strings.Repeat("x", maxRequestIDLength+1), "generated-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			m.newID = func() string { return "generated-id" }

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
			req.Header.Set("User-Agent", "curl/8.5")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen echo.Context
			err := m.Process(func(c echo.Context) error {
				seen = c
				return nil
			})(c)

			require.NoError(t, err)
			ctx := seen.Request().Context()
			assert.Equal(t, tt.want, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, tt.want, deliverycontext.GetRequestID(seen))
			assert.Equal(t, tt.want, deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, deliverycontext.ClientInfo{IPAddress: "203.0.113.9", UserAgent: "curl/8.5"},
				deliverycontext.GetClientInfo(ctx))
			assert.NotNil(t, ctx.Value(deliverycontext.KeyLogger))
		})
	}
}

func newLoggerMiddleware(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), buf
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
		wantCode  int
		wantErr   string
	}{
		{
			name:      "success",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
			wantLevel: "DEBUG",
			wantCode:  http.StatusNoContent,
		},
		{
			name:      "domain error before any write",
			handler:   func(echo.Context) error { return domainerrors.ErrTerminalState.WithDetails("order is delivered") },
			wantLevel: "WARN",
			wantCode:  http.StatusConflict,
			wantErr:   domainerrors.ErrTerminalState.ErrorCode(),
		},
		{
			name:      "unknown error",
			handler:   func(echo.Context) error { return assert.AnError },
			wantLevel: "ERROR",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, buf := newLoggerMiddleware(true)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?limit=5", nil)
			req = req.WithContext(deliverycontext.WithActorID(
				deliverycontext.WithClientInfo(req.Context(), deliverycontext.ClientInfo{IPAddress: "203.0.113.9"}), actorID))
			c := e.NewContext(req, httptest.NewRecorder())
			c.SetPath("/api/v1/orders")

			_ = m.Handle(tt.handler)(c)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "/api/v1/orders", line["route"])
			assert.EqualValues(t, tt.wantCode, line["status"])
			assert.Equal(t, actorID.String(), line["actor_id"])
			assert.Equal(t, "203.0.113.9", line["remote_ip"])
			assert.Equal(t, "limit=5", line["query"])
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, line["code"])
			}
		})
	}
}

func TestLoggerMiddleware_SilentOutsideDebug(t *testing.T) {
	m, buf := newLoggerMiddleware(false)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Zero(t, buf.Len())
}
