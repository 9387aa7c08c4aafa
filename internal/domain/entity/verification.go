// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationToken is a single-use token backing out-of-band flows such as
// password reset and email verification. At most one live token exists per
// identifier; issuing a new one silently replaces any prior token.
type VerificationToken struct {
	ID         uuid.UUID // The unique ID for this token record.
	Identifier string    // The normalized email or phone number the token was issued for.
	Value      string    // The opaque token value handed to the user out-of-band.
	ExpiresAt  time.Time // The exact time when this token becomes invalid.
	CreatedAt  time.Time // Timestamp of when this token was issued.
}

// NewVerificationToken creates a token for an identifier with the given value
// and lifetime.
func NewVerificationToken(identifier, value string, expiresAt time.Time) *VerificationToken {
	return &VerificationToken{
		ID:         uuid.New(),
		Identifier: NormalizeAccountID(identifier),
		Value:      value,
		ExpiresAt:  expiresAt,
		CreatedAt:  time.Now(),
	}
}

// IsValid reports whether the token has not yet expired.
func (t *VerificationToken) IsValid() bool {
	return t.ExpiresAt.After(time.Now())
}
