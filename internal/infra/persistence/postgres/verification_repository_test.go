package postgres

import (
	"context"
	"testing"
	"time"

	"keystone/internal/domain/entity"
	"keystone/internal/domain/repository"
	"keystone/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newVerificationTestDB opens an in-memory SQLite database. The Postgres
// column defaults in the model tags do not translate, so the table is created
// directly instead of through AutoMigrate.
func newVerificationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE verification_tokens (
		id TEXT PRIMARY KEY,
		identifier TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL UNIQUE,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	)`).Error)

	return db
}

// Issuing a second token for the same identifier must replace the first, so
// at most one token per identifier is ever live.
func TestVerificationRepository_Create_ReplacesTokenForIdentifier(t *testing.T) {
	repo := NewVerificationRepository(newVerificationTestDB(t))
	ctx := context.Background()
	identifier := "password-reset:user@example.com"

	first := entity.NewVerificationToken(identifier, "first-token-value", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, first))

	second := entity.NewVerificationToken(identifier, "second-token-value", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, second))

	live, err := repo.FindByIdentifier(ctx, identifier)
	require.NoError(t, err)
	assert.Equal(t, "second-token-value", live.Value)

	firstValid, err := repo.IsValid(ctx, "first-token-value")
	require.NoError(t, err)
	assert.False(t, firstValid)

	secondValid, err := repo.IsValid(ctx, "second-token-value")
	require.NoError(t, err)
	assert.True(t, secondValid)
}

func TestVerificationRepository_IsValid_ExpiredToken(t *testing.T) {
	repo := NewVerificationRepository(newVerificationTestDB(t))
	ctx := context.Background()

	expired := entity.NewVerificationToken("email-verification:user@example.com", "expired-value", time.Now().Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, expired))

	valid, err := repo.IsValid(ctx, "expired-value")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerificationRepository_DeleteExpired(t *testing.T) {
	db := newVerificationTestDB(t)
	repo := NewVerificationRepository(db)
	ctx := context.Background()

	expired := entity.NewVerificationToken("password-reset:old@example.com", "old-value", time.Now().Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, expired))
	live := entity.NewVerificationToken("password-reset:new@example.com", "new-value", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, live))

	deleted, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	var remaining int64
	require.NoError(t, db.Model(&model.VerificationTokenModel{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestVerificationRepository_FindByIdentifier_NotFound(t *testing.T) {
	repo := NewVerificationRepository(newVerificationTestDB(t))

	_, err := repo.FindByIdentifier(context.Background(), "password-reset:nobody@example.com")

	assert.ErrorIs(t, err, repository.ErrVerificationTokenNotFound)
}
