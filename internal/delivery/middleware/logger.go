package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/delivery/http/validator"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes a detailed line per request in debug mode: the
// matched route, the authenticated actor and the error code of a failed call.
// The access log itself comes from slog-echo.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		now:    time.Now,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := m.now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	ctx := req.Context()
	status := responseStatus(c, err)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", m.now().Sub(start)),
	}
	fields = append(fields, deliverycontext.GetClientInfo(ctx).Attrs()...)
	if actorID, ok := deliverycontext.GetActorID(ctx); ok {
		fields = append(fields, slog.String("actor_id", actorID.String()))
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			fields = append(fields, slog.String("code", appErr.ErrorCode()))
		}
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request detail", fields...)
}

// responseStatus is the status the client receives. Echo renders a returned
// error after the middleware chain unwinds, so the status is derived from err
// when nothing has been written yet.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	if validator.Fields(err) != nil {
		return http.StatusBadRequest
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
