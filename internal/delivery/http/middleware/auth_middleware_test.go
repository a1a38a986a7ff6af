package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/config"
	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/service"
	"ledger/internal/infra/auth"
)

func newTestTokenService(t *testing.T, accessTTL time.Duration) service.TokenService {
	t.Helper()

	svc, err := auth.NewJWTService(&config.Config{
		SecretKey: config.SecretKey{
			Access:          "middleware-test-access-secret",
			Refresh:         "middleware-test-refresh-secret",
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: time.Hour,
		},
	})
	require.NoError(t, err)

	return svc
}

// invoke runs the Authenticate middleware in front of a handler that echoes
// the claims the middleware attached.
func invoke(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokenSvc)
	handler := mw.Authenticate(func(c echo.Context) error {
		userID, _ := c.Get(ContextKeyUserID).(uuid.UUID)
		email, _ := c.Get(ContextKeyEmail).(string)

		return c.JSON(http.StatusOK, map[string]string{
			"userID": userID.String(),
			"email":  email,
		})
	})
	require.NoError(t, handler(c))

	var body response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Minute)

	rec, body := invoke(t, tokenSvc, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized.", body.Message)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Minute)

	rec, body := invoke(t, tokenSvc, "Bearer")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized.", body.Message)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := newTestTokenService(t, -time.Minute)

	access, _, err := tokenSvc.GenerateTokens(uuid.New(), "user@example.com")
	require.NoError(t, err)

	rec, body := invoke(t, newTestTokenService(t, time.Minute), "Bearer "+access)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Expired", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "TOKEN_EXPIRED", body.Error.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Minute)

	rec, _ := invoke(t, tokenSvc, "Bearer not-a-real-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Minute)

	// A refresh token must not open access-protected routes.
	_, refresh, err := tokenSvc.GenerateTokens(uuid.New(), "user@example.com")
	require.NoError(t, err)

	rec, _ := invoke(t, tokenSvc, "Bearer "+refresh)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Minute)
	userID := uuid.New()

	access, _, err := tokenSvc.GenerateTokens(userID, "user@example.com")
	require.NoError(t, err)

	rec, _ := invoke(t, tokenSvc, "Bearer "+access)

	assert.Equal(t, http.StatusOK, rec.Code)

	var claims map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claims))
	assert.Equal(t, userID.String(), claims["userID"])
	assert.Equal(t, "user@example.com", claims["email"])
}
