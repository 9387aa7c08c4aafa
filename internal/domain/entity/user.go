// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Authentication methods live on AuthIdentity; the user record only carries
// the identity-independent attributes and the single assigned role.
type User struct {
	ID            uuid.UUID // The unique identifier for the user.
	Name          string    // The user's display name.
	Email         string    // The user's primary contact email, also used as a login identifier.
	EmailVerified bool      // Whether the primary email has been verified out-of-band.
	Role          *Role     // The single assigned role. Nil means no role has been assigned.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}
