package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID carries the request id, in echo.Context and context.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger carries the logger tagged with the request id.
	KeyLogger ContextKey = "logger"

	// KeyClientInfo carries the caller's network identity.
	KeyClientInfo ContextKey = "client_info"

	// KeyActorID carries the authenticated user id.
	KeyActorID ContextKey = "actor_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// ClientInfo is the network identity of a request, copied into audit records
// and order creation metadata.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// Attrs returns the non-empty fields as log attributes.
func (i ClientInfo) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if i.IPAddress != "" {
		attrs = append(attrs, slog.String("remote_ip", i.IPAddress))
	}
	if i.UserAgent != "" {
		attrs = append(attrs, slog.String("user_agent", i.UserAgent))
	}

	return attrs
}

// Scope is everything the request middleware seeds into a request context.
type Scope struct {
	RequestID string
	Client    ClientInfo
	Logger    *slog.Logger
}

// WithScope stores every non-empty field of s in ctx.
func WithScope(ctx context.Context, s Scope) context.Context {
	if s.RequestID != "" {
		ctx = WithRequestID(ctx, s.RequestID)
	}
	if s.Logger != nil {
		ctx = WithLogger(ctx, s.Logger)
	}
	if s.Client != (ClientInfo{}) {
		ctx = WithClientInfo(ctx, s.Client)
	}

	return ctx
}

// GetRequestID returns the request id stored on c, then the one in the
// request context. A fresh UUID is returned when neither is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback
// outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithClientInfo returns a new context carrying info.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, KeyClientInfo, info)
}

// GetClientInfo returns the client info of ctx, or the zero value.
func GetClientInfo(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(KeyClientInfo).(ClientInfo)

	return info
}

// WithActorID returns a new context carrying the authenticated user id.
func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyActorID, actorID)
}

// GetActorID returns the authenticated user id, if any.
func GetActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyActorID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
