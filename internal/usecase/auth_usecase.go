// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// RefreshTokenInput carries the refresh token to exchange for a new access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// IssueAPIKeyInput defines the data required to mint a new API key.
type IssueAPIKeyInput struct {
	ProjectID uuid.UUID
	Name      string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenOutput returns a freshly minted access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// IssueAPIKeyOutput returns the composed key exactly once. Only the prefix
// and a digest of the secret survive in storage; Key is not recoverable later.
type IssueAPIKeyOutput struct {
	Key    string // "<prefix>.<secret>"
	Prefix string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input LogoutInput) error
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)
	IssueAPIKey(ctx context.Context, input IssueAPIKeyInput) (*IssueAPIKeyOutput, error)
}
