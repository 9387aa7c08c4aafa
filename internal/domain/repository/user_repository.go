// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Identities and sessions cascade at the schema level.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRoleRepository manages the single role stored on the user record.
// Roles are queried independently of identities and sessions.
type UserRoleRepository interface {
	// SetRole assigns a role to the user, or clears it when role is nil.
	SetRole(ctx context.Context, userID uuid.UUID, role *entity.Role) error

	// GetRole returns the user's role, or nil when none is assigned.
	GetRole(ctx context.Context, userID uuid.UUID) (*entity.Role, error)

	// HasRole reports whether the user holds the given role.
	HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error)

	// GetUserIDsByRole returns the IDs of every user holding the given role.
	GetUserIDsByRole(ctx context.Context, role entity.Role) ([]uuid.UUID, error)
}
