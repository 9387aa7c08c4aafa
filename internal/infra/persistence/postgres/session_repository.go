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

// sessionRepository implements the repository.AuthSessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.AuthSessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Save persists a new session, representing one logged-in device.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.AuthSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidToken.WrapMessage("session token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required session information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID retrieves a session record by its unique ID.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	var sessionM model.AuthSessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByToken retrieves a session record by its refresh token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.AuthSession, error) {
	var sessionM model.AuthSessionModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token")
	}

	session := toSessionDomain(&sessionM)
	if session.IsExpired() {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// FindActiveByUserID retrieves all non-expired sessions for a user, newest first.
func (repo *sessionRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AuthSession, error) {
	var sessionModels []*model.AuthSessionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active sessions")
	}

	sessions := make([]*entity.AuthSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// FindAllByUserID retrieves every session for a user, expired or not.
func (repo *sessionRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AuthSession, error) {
	var sessionModels []*model.AuthSessionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by user ID")
	}

	sessions := make([]*entity.AuthSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// Delete removes a session by ID, effectively ending it.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthSessionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByToken atomically removes the session holding the given token and
// returns the deleted record. DELETE ... RETURNING makes this a single
// statement, so two concurrent presenters of the same token can never both
// observe the session.
func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) (*entity.AuthSession, error) {
	var deleted []model.AuthSessionModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token = ?", token).
		Delete(&deleted)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete session by token")
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, repository.ErrSessionNotFound
	}

	return toSessionDomain(&deleted[0]), nil
}

// DeleteAllByUserID removes every session for a user and returns the count deleted.
func (repo *sessionRepository) DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AuthSessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete sessions by user ID")
	}

	return int(result.RowsAffected), nil
}

// DeleteExpired removes all expired sessions and returns the count deleted.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.AuthSessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return int(result.RowsAffected), nil
}

// CountActiveByUserID returns the number of non-expired sessions for a user.
func (repo *sessionRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AuthSessionModel{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active sessions")
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM AuthSessionModel to a domain AuthSession entity.
func toSessionDomain(data *model.AuthSessionModel) *entity.AuthSession {
	if data == nil {
		return nil
	}

	return &entity.AuthSession{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		IPAddress: data.IPAddress,
		UserAgent: data.UserAgent,
		CreatedAt: data.CreatedAt,
	}
}

// fromSessionDomain converts a domain AuthSession entity to a GORM AuthSessionModel.
func fromSessionDomain(data *entity.AuthSession) *model.AuthSessionModel {
	if data == nil {
		return nil
	}

	return &model.AuthSessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		IPAddress: data.IPAddress,
		UserAgent: data.UserAgent,
		CreatedAt: data.CreatedAt,
	}
}
