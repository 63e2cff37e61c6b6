// Package handler contains the HTTP handlers for the purchase API.
package handler

import (
	"net/http"

	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/delivery/http/response"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// actorID returns the user authenticated by AuthMiddleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetActorID(c.Request().Context())
	if !ok {
		return uuid.Nil, domainerrors.NewAccountDenial(domainerrors.ErrAuthenticationRequired, "bearer access token", "anonymous")
	}

	return id, nil
}

// uuidParam parses a path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// targetUser is the user whose cart or wishlist is addressed: the userId
// query parameter when present, the caller otherwise.
func targetUser(c echo.Context, actor uuid.UUID) (uuid.UUID, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return actor, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid userId")
	}

	return id, nil
}
