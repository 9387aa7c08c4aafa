// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityRepository implements the repository.AuthIdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.AuthIdentityRepository {
	return &identityRepository{
		db: db,
	}
}

// Save persists an authentication identity, creating or updating it.
func (repo *identityRepository) Save(ctx context.Context, identity *entity.AuthIdentity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Save(identityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("identity already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save identity")
	}

	// Update the entity with generated values
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// FindByID retrieves an identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthIdentity, error) {
	var identityM model.AuthIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by ID")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByUserID retrieves all authentication methods bound to a user.
func (repo *identityRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AuthIdentity, error) {
	var identityModels []*model.AuthIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&identityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find identities by user ID")
	}

	identities := make([]*entity.AuthIdentity, 0, len(identityModels))
	for _, identityM := range identityModels {
		identities = append(identities, toIdentityDomain(identityM))
	}

	return identities, nil
}

// FindByUserIDAndProvider retrieves one user's identity for a specific provider.
func (repo *identityRepository) FindByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.AuthIdentity, error) {
	var identityM model.AuthIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by user and provider")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByProviderAndIdentifier retrieves an identity by its provider and
// normalized account identifier. This is the login lookup.
func (repo *identityRepository) FindByProviderAndIdentifier(ctx context.Context, provider entity.Provider, accountID string) (*entity.AuthIdentity, error) {
	var identityM model.AuthIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND account_id = ?", provider.String(), accountID).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by provider and identifier")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByIdentifier retrieves an identity by account identifier regardless of provider.
func (repo *identityRepository) FindByIdentifier(ctx context.Context, accountID string) (*entity.AuthIdentity, error) {
	var identityM model.AuthIdentityModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by identifier")
	}

	return toIdentityDomain(&identityM), nil
}

// ExistsByIdentifier reports whether any identity uses the account identifier.
func (repo *identityRepository) ExistsByIdentifier(ctx context.Context, accountID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AuthIdentityModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check identifier existence")
	}

	return count > 0, nil
}

// Delete removes an identity by ID.
func (repo *identityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthIdentityModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// DeleteByUserID removes all identities for a user and returns the count removed.
func (repo *identityRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AuthIdentityModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete identities by user ID")
	}

	return int(result.RowsAffected), nil
}

// --- Mapper Functions ---

// toIdentityDomain converts a GORM AuthIdentityModel to a domain AuthIdentity entity.
func toIdentityDomain(data *model.AuthIdentityModel) *entity.AuthIdentity {
	if data == nil {
		return nil
	}

	identity := &entity.AuthIdentity{
		ID:           data.ID,
		UserID:       data.UserID,
		Provider:     entity.Provider(data.Provider),
		AccountID:    data.AccountID,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.AccessToken != nil || data.RefreshToken != nil || data.Scope != nil {
		identity.OAuth = &entity.OAuthTokens{
			RefreshToken:          data.RefreshToken,
			AccessTokenExpiresAt:  data.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
			Scope:                 data.Scope,
		}
		if data.AccessToken != nil {
			identity.OAuth.AccessToken = *data.AccessToken
		}
	}

	return identity
}

// fromIdentityDomain converts a domain AuthIdentity entity to a GORM AuthIdentityModel.
func fromIdentityDomain(data *entity.AuthIdentity) *model.AuthIdentityModel {
	if data == nil {
		return nil
	}

	identityM := &model.AuthIdentityModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Provider:     data.Provider.String(),
		AccountID:    data.AccountID,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.OAuth != nil {
		identityM.AccessToken = &data.OAuth.AccessToken
		identityM.RefreshToken = data.OAuth.RefreshToken
		identityM.AccessTokenExpiresAt = data.OAuth.AccessTokenExpiresAt
		identityM.RefreshTokenExpiresAt = data.OAuth.RefreshTokenExpiresAt
		identityM.Scope = data.OAuth.Scope
	}

	return identityM
}
