package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Auth event types published on the security audit stream.
const (
	EventUserRegistered   = "auth.user.registered"
	EventUserLoggedIn     = "auth.user.logged_in"
	EventTokenRefreshed   = "auth.token.refreshed"
	EventSessionRevoked   = "auth.session.revoked"
	EventSessionsRevoked  = "auth.sessions.revoked_all"
	EventPasswordChanged  = "auth.password.changed"
	EventPasswordReset    = "auth.password.reset"
	EventEmailVerified    = "auth.email.verified"
	EventUserLoggedOut    = "auth.user.logged_out"
)

// AuthEvent is an audit record emitted by the auth service. Events are
// collected as explicit outputs of each operation and published by the
// service after the transaction commits, never queued implicitly on entities.
type AuthEvent struct {
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing
	Type       string     `json:"type"`
	UserID     uuid.UUID  `json:"user_id"`
	SessionID  *uuid.UUID `json:"session_id,omitempty"`
	IPAddress  *string    `json:"ip_address,omitempty"`
	UserAgent  *string    `json:"user_agent,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing auth events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an auth audit event for async processing
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
