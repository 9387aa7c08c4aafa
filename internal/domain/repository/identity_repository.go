// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is returned when an authentication identity is not found.
var ErrIdentityNotFound = errors.New("authentication identity not found")

// AuthIdentityRepository defines the standard operations for authentication
// identity persistence. Every lookup either returns a complete entity or a
// not-found signal, never a partial read.
type AuthIdentityRepository interface {
	// Save persists an authentication identity, creating or updating it.
	Save(ctx context.Context, identity *entity.AuthIdentity) error

	// FindByID retrieves an identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthIdentity, error)

	// FindByUserID retrieves all authentication methods bound to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.AuthIdentity, error)

	// FindByUserIDAndProvider retrieves one user's identity for a specific provider.
	FindByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.AuthIdentity, error)

	// FindByProviderAndIdentifier retrieves an identity by its provider and
	// normalized account identifier. This is the login lookup.
	FindByProviderAndIdentifier(ctx context.Context, provider entity.Provider, accountID string) (*entity.AuthIdentity, error)

	// FindByIdentifier retrieves an identity by account identifier regardless of provider.
	FindByIdentifier(ctx context.Context, accountID string) (*entity.AuthIdentity, error)

	// ExistsByIdentifier reports whether any identity uses the account identifier.
	ExistsByIdentifier(ctx context.Context, accountID string) (bool, error)

	// Delete removes an identity by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes all identities for a user and returns the count removed.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
