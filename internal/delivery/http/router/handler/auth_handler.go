// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type issueAPIKeyRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	Name      string    `json:"name" validate:"required"`
}

// --- Response DTOs ---

// userResponse is the public projection of a user. The password digest
// never appears in any response body.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// settingsResponse carries the defaults every fresh account starts with.
type settingsResponse struct {
	EmailNotifications bool   `json:"emailNotifications"`
	Timezone           string `json:"timezone"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"user": toUserResponse(output.User),
		"settings": settingsResponse{
			EmailNotifications: true,
			Timezone:           "UTC",
		},
	}, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"token":        output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "Login successful")
}

// Logout revokes the supplied refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input refreshTokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), usecase.LogoutInput{
		RefreshToken: input.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input refreshTokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), usecase.RefreshTokenInput{
		RefreshToken: input.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"token": output.AccessToken,
	}, "Token refreshed")
}

// IssueAPIKey mints a new API key for a project. The composed key appears
// in this response only; it cannot be retrieved again.
func (h *AuthHandler) IssueAPIKey(c echo.Context) error {
	var input issueAPIKeyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid api key input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.IssueAPIKey(c.Request().Context(), usecase.IssueAPIKeyInput{
		ProjectID: input.ProjectID,
		Name:      input.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"apiKey": output.Key,
	}, "API key created")
}

// Remove deletes the authenticated user's account.
// TODO: wire account deletion through the usecase once cascade semantics
// for projects and events are settled.
func (h *AuthHandler) Remove(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// ForgotPassword triggers a password reset email.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "forgot password")
}

// ResetPassword sets a new password using a reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "reset password")
}

// Activate activates an account using an activation token.
func (h *AuthHandler) Activate(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "activate user")
}
