package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// The subject is the user ID; SessionID ties the token to one device session.
type Claims struct {
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	SessionID uuid.UUID `json:"sessionId"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenIssuer defines the interface for signing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenIssuer interface {
	// Sign creates a signed access token for the given user and session.
	Sign(userID uuid.UUID, email string, roles []string, sessionID uuid.UUID) (string, error)

	// Verify checks a token string and returns its claims when valid.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh-token sessions.
	RefreshTokenDuration() time.Duration
}
