// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"keystone/internal/domain/entity"
	"keystone/internal/domain/repository"
	"keystone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.UserRoleRepository interface.
// Roles live in a column on the users table, so this repository reads and
// writes that column without touching the rest of the user record.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.UserRoleRepository {
	return &roleRepository{
		db: db,
	}
}

// SetRole assigns a role to the user, or clears it when role is nil.
func (repo *roleRepository) SetRole(ctx context.Context, userID uuid.UUID, role *entity.Role) error {
	var value *string
	if role != nil {
		r := role.String()
		value = &r
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("role", value)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// GetRole returns the user's role, or nil when none is assigned.
func (repo *roleRepository) GetRole(ctx context.Context, userID uuid.UUID) (*entity.Role, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Select("role").
		Where("id = ?", userID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get role")
	}

	if userM.Role == nil {
		return nil, nil
	}

	role := entity.Role(*userM.Role)

	return &role, nil
}

// HasRole reports whether the user holds the given role.
func (repo *roleRepository) HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND role = ?", userID, role.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check role")
	}

	return count > 0, nil
}

// GetUserIDsByRole returns the IDs of every user holding the given role.
func (repo *roleRepository) GetUserIDsByRole(ctx context.Context, role entity.Role) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role.String()).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	return ids, nil
}
