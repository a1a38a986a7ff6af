package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"
)

// ErrAPIKeyNotFound is returned when no API key matches the lookup.
var ErrAPIKeyNotFound = errors.New("api key not found")

// APIKeyRepository defines persistence operations for project API keys.
type APIKeyRepository interface {
	// Create persists a new API key record (prefix + secret digest, never the secret).
	Create(ctx context.Context, key *entity.APIKey) error

	// FindByPrefix retrieves an API key record by its public prefix.
	FindByPrefix(ctx context.Context, prefix string) (*entity.APIKey, error)

	// DeleteByPrefix removes an API key record by its public prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
