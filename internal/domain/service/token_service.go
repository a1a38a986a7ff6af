package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued tokens.
// Only non-secret identity attributes are allowed here; the password digest
// must never be part of the claim set.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Type   string    `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying JWTs.
// It is stateless: refresh-token revocation lives in the RefreshTokenStore
// and is the caller's responsibility.
type TokenService interface {
	// GenerateTokens creates an access/refresh token pair for a user,
	// signed with distinct secrets and expiry durations per kind.
	GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
