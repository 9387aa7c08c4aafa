// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// AuthSessionRepository defines the interface for refresh-token session
// management. This supports multi-device login and remote logout.
type AuthSessionRepository interface {
	// Save persists a new session, representing one logged-in device.
	Save(ctx context.Context, session *entity.AuthSession) error

	// FindByID retrieves a session record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)

	// FindByToken retrieves a session record by its refresh token.
	FindByToken(ctx context.Context, token string) (*entity.AuthSession, error)

	// FindActiveByUserID retrieves all non-expired sessions for a user,
	// newest first. This backs the "active devices" listing.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AuthSession, error)

	// FindAllByUserID retrieves every session for a user, expired or not.
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AuthSession, error)

	// Delete removes a session by ID, effectively ending it.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByToken atomically removes the session holding the given token and
	// returns the deleted record. If no session holds the token, it returns
	// ErrSessionNotFound. Refresh rotation depends on this being a single
	// conditional delete: two concurrent calls with the same token must never
	// both observe the session.
	DeleteByToken(ctx context.Context, token string) (*entity.AuthSession, error)

	// DeleteAllByUserID removes every session for a user and returns the count
	// deleted. This backs "log out all devices" and forced invalidation.
	DeleteAllByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpired removes all expired sessions and returns the count deleted.
	// Called periodically by the cleanup worker.
	DeleteExpired(ctx context.Context) (int, error)

	// CountActiveByUserID returns the number of non-expired sessions for a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
