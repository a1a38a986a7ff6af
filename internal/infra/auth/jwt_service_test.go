package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/config"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:          "access-secret-for-tests",
			Refresh:         "refresh-secret-for-tests",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(nil)
	assert.Error(t, err)

	cfg := testTokenConfig()
	cfg.SecretKey.Access = ""
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	cfg = testTokenConfig()
	cfg.SecretKey.Refresh = ""
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	claims, err = svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(uuid.New(), "user@example.com")
	require.NoError(t, err)

	// A refresh token must not pass access validation and vice versa.
	// The secrets differ, so the signature check fails first.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testTokenConfig()
	cfg.SecretKey.AccessTokenTTL = -time.Minute
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	other := testTokenConfig()
	other.SecretKey.Access = "a-completely-different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = otherSvc.ValidateAccessToken(access)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.jwt")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
