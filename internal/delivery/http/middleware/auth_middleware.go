package middleware

import (
	"strings"

	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on every protected route.
//
// The two failure tiers are part of the API contract and must never be
// conflated: a request that carries no usable credential is rejected with
// ErrTokenRequired (401), while a credential that is present but fails
// verification, for any reason, is rejected with ErrTokenInvalid (403).
// On success the bound user ID is attached to the request context for
// downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractBearerToken(c.Request().Header.Get("Authorization"))
		if token == "" {
			return domainerrors.ErrTokenRequired
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set("userID", claims.UserID)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// extractBearerToken returns the credential from an "Authorization: Bearer
// <token>" header value, or "" when the header is absent or carries no token.
// The scheme word itself is not checked: a header like "Basic abc" still
// presents a credential, it just fails verification.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
