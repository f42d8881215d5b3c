package middleware

import (
	"strings"

	"zilptext/internal/domain/errors"
	"zilptext/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyClaims    = "sessionClaims"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
// Every failure answers with the same wrong_credentials code so the response
// does not leak whether a token was malformed, expired or forged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.ErrWrongCredentials
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.ErrWrongCredentials
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.ErrWrongCredentials
		}

		// Set account info on the context for handlers to use
		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}
