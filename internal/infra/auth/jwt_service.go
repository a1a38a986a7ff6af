package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ledger/config"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"
)

// Token kinds carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface
// using HMAC-SHA256 signed JWTs. Access and refresh tokens are signed with
// distinct secrets so one cannot be replayed as the other.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must not be empty")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.SecretKey.AccessTokenTTL,
		refreshTTL:    cfg.SecretKey.RefreshTokenTTL,
	}, nil
}

// GenerateTokens creates a signed access/refresh token pair for a user.
func (s *jwtService) GenerateTokens(userID uuid.UUID, email string) (string, string, error) {
	accessToken, err := s.sign(userID, email, TokenTypeAccess, s.accessSecret, s.accessTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.sign(userID, email, TokenTypeRefresh, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken verifies an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, TokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken verifies a refresh token and returns its claims.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, TokenTypeRefresh, s.refreshSecret)
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(userID uuid.UUID, email, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

func (s *jwtService) parse(tokenString, wantType string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if !token.Valid || claims.Type != wantType {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}
