package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apiKeyRepository implements the domain.APIKeyRepository interface using GORM.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{db: db}
}

// Create persists a new API key. The caller is responsible for having hashed
// the secret; raw secrets never reach this layer.
func (repo *apiKeyRepository) Create(ctx context.Context, key *entity.APIKey) error {
	keyM := fromAPIKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Prefix collisions are vanishingly rare; surface them so the
			// caller can regenerate rather than silently overwrite.
			return domainerrors.NewDatabaseExecuteError(err, "api key prefix already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt

	return nil
}

// FindByPrefix retrieves a single API key by its public prefix.
func (repo *apiKeyRepository) FindByPrefix(ctx context.Context, prefix string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel
	err := repo.db.WithContext(ctx).
		Where("prefix = ?", prefix).
		First(&keyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find api key by prefix")
	}

	return toAPIKeyDomain(&keyM), nil
}

// DeleteByPrefix removes an API key by its public prefix.
func (repo *apiKeyRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	result := repo.db.WithContext(ctx).
		Where("prefix = ?", prefix).
		Delete(&model.APIKeyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete api key")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAPIKeyNotFound
	}

	return nil
}

// toAPIKeyDomain maps a persistence model to a domain entity.
func toAPIKeyDomain(keyM *model.APIKeyModel) *entity.APIKey {
	return &entity.APIKey{
		ID:         keyM.ID,
		ProjectID:  keyM.ProjectID,
		Name:       keyM.Name,
		Prefix:     keyM.Prefix,
		SecretHash: keyM.SecretHash,
		CreatedAt:  keyM.CreatedAt,
	}
}

// fromAPIKeyDomain maps a domain entity to a persistence model.
func fromAPIKeyDomain(key *entity.APIKey) *model.APIKeyModel {
	return &model.APIKeyModel{
		ID:         key.ID,
		ProjectID:  key.ProjectID,
		Name:       key.Name,
		Prefix:     key.Prefix,
		SecretHash: key.SecretHash,
		CreatedAt:  key.CreatedAt,
	}
}
