// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthSession represents a long-lived, authorized device session holding a
// refresh token. Revocation is modeled as deletion of the record; there is no
// "revoked but retained" state.
type AuthSession struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	Token     string    // The opaque refresh token. Unique across all sessions.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	IPAddress *string   // The client IP address recorded at creation, if known.
	UserAgent *string   // The client user agent recorded at creation, if known.
	CreatedAt time.Time // Timestamp of when this session was created (the login time).
}

// DeviceContext carries the optional client information recorded on a session.
type DeviceContext struct {
	IPAddress *string
	UserAgent *string
}

// NewSession creates a session for a freshly issued refresh token.
func NewSession(userID uuid.UUID, token string, expiresAt time.Time, device DeviceContext) *AuthSession {
	return &AuthSession{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		IPAddress: device.IPAddress,
		UserAgent: device.UserAgent,
		CreatedAt: time.Now(),
	}
}

// IsValid reports whether the session has not yet expired.
func (s *AuthSession) IsValid() bool {
	return s.ExpiresAt.After(time.Now())
}

// IsExpired reports whether the session has expired.
func (s *AuthSession) IsExpired() bool {
	return !s.IsValid()
}

// SessionInfo is the descriptor exposed when listing a user's sessions.
type SessionInfo struct {
	ID        uuid.UUID `json:"id"`
	IPAddress *string   `json:"ipAddress"`
	UserAgent *string   `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsCurrent bool      `json:"isCurrent"`
}

// Describe converts the session into its listing descriptor.
func (s *AuthSession) Describe(currentSessionID uuid.UUID) *SessionInfo {
	return &SessionInfo{
		ID:        s.ID,
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		IsCurrent: s.ID == currentSessionID,
	}
}
