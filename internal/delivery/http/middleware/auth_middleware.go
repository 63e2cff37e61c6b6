package middleware

import (
	"strings"

	deliverycontext "orderguard/internal/delivery/context"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyActorID is the echo.Context key holding the authenticated user id.
const KeyActorID = "actorID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the user id on
// both the echo and the request context. The role claim is ignored: every
// authorization decision re-reads the stored user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthenticated("missing authorization header")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return unauthenticated("malformed authorization header")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthenticated("invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return unauthenticated(claims.Type + " token")
		}

		c.Set(KeyActorID, claims.UserID)
		ctx := deliverycontext.WithActorID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func unauthenticated(current string) error {
	return domainerrors.NewAccountDenial(domainerrors.ErrAuthenticationRequired, "bearer access token", current)
}
