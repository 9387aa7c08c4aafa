// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationTokenNotFound is returned when a verification token is not
// found or has already been consumed.
var ErrVerificationTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository manages single-use verification tokens.
// The storage enforces "at most one live token per identifier".
type VerificationTokenRepository interface {
	// Create inserts the token, first deleting any existing token for the same
	// identifier. The two steps run in one transaction.
	Create(ctx context.Context, token *entity.VerificationToken) error

	// FindByValue retrieves a token by its opaque value.
	FindByValue(ctx context.Context, value string) (*entity.VerificationToken, error)

	// FindByIdentifier retrieves the live token for an identifier, if any.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.VerificationToken, error)

	// Delete removes a token by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIdentifier removes any token for the identifier and reports
	// whether one existed.
	DeleteByIdentifier(ctx context.Context, identifier string) (bool, error)

	// DeleteExpired removes all expired tokens and returns the count deleted.
	DeleteExpired(ctx context.Context) (int, error)

	// IsValid reports whether a token with the value exists and has not expired.
	IsValid(ctx context.Context, value string) (bool, error)

	// ConsumeByValue atomically deletes the token with the given value if it
	// exists and has not expired, returning the deleted record. Two concurrent
	// consumers of the same value must never both succeed.
	ConsumeByValue(ctx context.Context, value string) (*entity.VerificationToken, error)
}
