// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"
)

// apiKeySecretBytes is the raw size of a generated API-key secret before encoding.
const apiKeySecretBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	apiKeyRepo   repository.APIKeyRepository
	tokenStore   repository.RefreshTokenStore
	hasher       service.PasswordHasher
	secretHasher service.SecretHasher
	generator    service.CredentialGenerator
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	APIKeyRepo   repository.APIKeyRepository
	TokenStore   repository.RefreshTokenStore
	Hasher       service.PasswordHasher
	SecretHasher service.SecretHasher
	Generator    service.CredentialGenerator
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		apiKeyRepo:   params.APIKeyRepo,
		tokenStore:   params.TokenStore,
		hasher:       params.Hasher,
		secretHasher: params.SecretHasher,
		generator:    params.Generator,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new active account after checking the email is unused.
// The uniqueness check and the insert run in one transaction so concurrent
// registrations of the same email cannot both succeed.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hashedPassword,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Active:       true,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Registration rejected: email already taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserAlreadyExists
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// Every failure cause collapses into the same invalid-credentials error so
// the response does not reveal whether the email exists.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !user.Active {
		srv.log(ctx).Warn("Login rejected: inactive account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	// The refresh token only becomes usable once it is in the allowlist.
	if err := srv.tokenStore.Store(ctx, refreshToken); err != nil {
		srv.log(ctx).Error("Failed to store refresh token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes a refresh token. Revoking an unknown or already revoked
// token succeeds quietly; logout is idempotent.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	if input.RefreshToken == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("refresh token is required")
	}

	if err := srv.tokenStore.Delete(ctx, input.RefreshToken); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// RefreshToken exchanges a valid, non-revoked refresh token for a new access
// token. The refresh token itself is left untouched and stays usable until
// logout or expiry.
func (srv *authService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("refresh token is required")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	allowed, err := srv.tokenStore.Contains(ctx, input.RefreshToken)
	if err != nil {
		srv.log(ctx).Error("Failed to check refresh token allowlist", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check refresh token allowlist")
	}
	if !allowed {
		return nil, domainerrors.ErrRefreshTokenRevoked
	}

	// Only the access token is handed out; the freshly signed refresh token
	// is discarded and never enters the allowlist.
	accessToken, _, err := srv.tokenService.GenerateTokens(claims.UserID, claims.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to mint access token during refresh", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mint access token during refresh")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// IssueAPIKey mints a new API key for a project. The composed
// "<prefix>.<secret>" value is returned exactly once; only the prefix and
// the scrypt digest of the secret are persisted.
func (srv *authService) IssueAPIKey(ctx context.Context, input usecase.IssueAPIKeyInput) (*usecase.IssueAPIKeyOutput, error) {
	if input.ProjectID == uuid.Nil || input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("project id and name are required")
	}

	prefix, err := srv.generator.Prefix()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate api key prefix")
	}

	secret, err := srv.generator.Secret(apiKeySecretBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate api key secret")
	}

	secretHash, err := srv.secretHasher.HashSecret(secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash api key secret", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash api key secret")
	}

	key := &entity.APIKey{
		ProjectID:  input.ProjectID,
		Name:       input.Name,
		Prefix:     prefix,
		SecretHash: secretHash,
	}

	if err := srv.apiKeyRepo.Create(ctx, key); err != nil {
		srv.log(ctx).Error("Failed to persist api key", slog.Any("projectID", input.ProjectID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist api key")
	}

	srv.log(ctx).Info("API key issued",
		slog.Any("projectID", input.ProjectID),
		slog.String("prefix", prefix),
	)

	return &usecase.IssueAPIKeyOutput{
		Key:    prefix + "." + secret,
		Prefix: prefix,
	}, nil
}
