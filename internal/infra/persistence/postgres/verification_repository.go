// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// verificationRepository implements the repository.VerificationTokenRepository interface.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationRepository{
		db: db,
	}
}

// Create inserts the token, first deleting any existing token for the same
// identifier. Both statements run in one transaction so the unique index on
// identifier never observes two live tokens.
func (repo *verificationRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	tokenM := fromVerificationDomain(token)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("identifier = ?", tokenM.Identifier).
			Delete(&model.VerificationTokenModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete previous token")
		}

		if err := tx.Create(tokenM).Error; err != nil {
			return errors.Wrap(err, "failed to insert token")
		}

		return nil
	})
	if err != nil {
		if isUniqueConstraintViolation(errors.Cause(err)) {
			return domainerrors.ErrConflict.WrapMessage("verification token already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByValue retrieves a token by its opaque value.
func (repo *verificationRepository) FindByValue(ctx context.Context, value string) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel

	if err := repo.db.WithContext(ctx).
		Where("value = ?", value).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token by value")
	}

	return toVerificationDomain(&tokenM), nil
}

// FindByIdentifier retrieves the live token for an identifier, if any.
func (repo *verificationRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel

	if err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token by identifier")
	}

	return toVerificationDomain(&tokenM), nil
}

// Delete removes a token by ID.
func (repo *verificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VerificationTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete verification token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationTokenNotFound
	}

	return nil
}

// DeleteByIdentifier removes any token for the identifier and reports whether one existed.
func (repo *verificationRepository) DeleteByIdentifier(ctx context.Context, identifier string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Delete(&model.VerificationTokenModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete verification token by identifier")
	}

	return result.RowsAffected > 0, nil
}

// DeleteExpired removes all expired tokens and returns the count deleted.
func (repo *verificationRepository) DeleteExpired(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.VerificationTokenModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired verification tokens")
	}

	return int(result.RowsAffected), nil
}

// IsValid reports whether a token with the value exists and has not expired.
func (repo *verificationRepository) IsValid(ctx context.Context, value string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("value = ? AND expires_at > ?", value, time.Now()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check verification token validity")
	}

	return count > 0, nil
}

// ConsumeByValue atomically deletes the token with the given value if it
// exists and has not expired, returning the deleted record. The conditional
// DELETE ... RETURNING closes the double-consumption race: of two concurrent
// consumers exactly one gets the row.
func (repo *verificationRepository) ConsumeByValue(ctx context.Context, value string) (*entity.VerificationToken, error) {
	var deleted []model.VerificationTokenModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("value = ? AND expires_at > ?", value, time.Now()).
		Delete(&deleted)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume verification token")
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, repository.ErrVerificationTokenNotFound
	}

	return toVerificationDomain(&deleted[0]), nil
}

// --- Mapper Functions ---

// toVerificationDomain converts a GORM VerificationTokenModel to a domain VerificationToken entity.
func toVerificationDomain(data *model.VerificationTokenModel) *entity.VerificationToken {
	if data == nil {
		return nil
	}

	return &entity.VerificationToken{
		ID:         data.ID,
		Identifier: data.Identifier,
		Value:      data.Value,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromVerificationDomain converts a domain VerificationToken entity to a GORM VerificationTokenModel.
func fromVerificationDomain(data *entity.VerificationToken) *model.VerificationTokenModel {
	if data == nil {
		return nil
	}

	return &model.VerificationTokenModel{
		ID:         data.ID,
		Identifier: data.Identifier,
		Value:      data.Value,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}
