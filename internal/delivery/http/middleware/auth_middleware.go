package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
)

// Context keys under which the middleware exposes the verified claims.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token before the handler runs.
// All rejections use 403: missing header, expired token, and any other
// verification failure each carry their own error code and message.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Forbidden(c, "TOKEN_MISSING", "Unauthorized.")
		}

		// The token is the second whitespace-separated segment ("Bearer <token>").
		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			return response.Forbidden(c, "TOKEN_MISSING", "Unauthorized.")
		}
		tokenString := fields[1]

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTokenExpired) {
				return response.Forbidden(c, "TOKEN_EXPIRED", "Expired")
			}

			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return response.Forbidden(c, appErr.ErrorCode(), appErr.Message())
			}

			return response.Forbidden(c, "TOKEN_INVALID", err.Error())
		}

		// Expose the verified identity to handlers.
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
