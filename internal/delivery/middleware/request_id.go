package middleware

import (
	"log/slog"

	deliverycontext "orderguard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds a client-supplied X-Request-Id; longer values are replaced.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id, echoed in the response
// header, and seeds the request context with a logger carrying that id and the
// caller's client info for audit records.
type RequestIDMiddleware struct {
	logger *slog.Logger
	newID  func() string
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Process reuses the caller's X-Request-Id when it is usable and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = m.newID()
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithScope(req.Context(), deliverycontext.Scope{
			RequestID: requestID,
			Client: deliverycontext.ClientInfo{
				IPAddress: c.RealIP(),
				UserAgent: req.UserAgent(),
			},
			Logger: m.logger.With(slog.String("request_id", requestID)),
		})
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
