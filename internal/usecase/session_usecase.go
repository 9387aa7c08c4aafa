// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// RevokeSessionInput identifies the target session and the caller context.
type RevokeSessionInput struct {
	SessionID        uuid.UUID
	CallerUserID     uuid.UUID
	CurrentSessionID uuid.UUID
}

// RevokeSessionResult is the structured outcome of a revocation attempt.
// Refusals (own current session, foreign session) are results, not errors.
type RevokeSessionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// ListSessions returns descriptors of the user's active sessions, marking
	// the caller's current one.
	ListSessions(ctx context.Context, userID, currentSessionID uuid.UUID) ([]*entity.SessionInfo, error)

	// GetSession returns the descriptor for one session owned by the user,
	// marked against the caller's current session.
	GetSession(ctx context.Context, userID, sessionID, currentSessionID uuid.UUID) (*entity.SessionInfo, error)

	// RevokeSession deletes one of the caller's other sessions. It refuses the
	// caller's current session and sessions the caller does not own.
	RevokeSession(ctx context.Context, input *RevokeSessionInput) (*RevokeSessionResult, error)

	// RevokeAllSessions deletes every session for the user and returns the
	// count deleted.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) (int, error)
}
