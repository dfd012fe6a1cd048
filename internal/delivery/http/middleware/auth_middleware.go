package middleware

import (
	"strings"

	deliverycontext "parfum/internal/delivery/context"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the
// request context for handlers and usecases. A missing or malformed
// header, an expired token and a tampered token each surface their own
// message through the error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrNotAuthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrNotAuthenticated.WrapMessage("authorization header must carry a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired.WrapMessage("bearer token expired")
			}

			return domainerrors.ErrTokenInvalid.WrapMessage("bearer token rejected")
		}

		// Set user claims on both contexts for handlers and usecases.
		c.Set(string(deliverycontext.KeyUserClaims), claims)
		ctx := c.Request().Context()
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserClaims(ctx, claims)))

		return next(c)
	}
}
