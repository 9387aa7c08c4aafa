// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keystone/internal/delivery/context"
	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	"keystone/internal/domain/service"
	"keystone/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.AuthSessionRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SessionRepo repository.AuthSessionRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:   params.TxManager,
		sessionRepo: params.SessionRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSessions retrieves descriptors for all active sessions of a user,
// newest first. The caller's current session is flagged so clients can
// render "this device".
func (srv *sessionService) ListSessions(ctx context.Context, userID, currentSessionID uuid.UUID) ([]*entity.SessionInfo, error) {
	srv.log(ctx).Debug("Listing sessions", slog.Any("userID", userID))

	sessions, err := srv.sessionRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list sessions")
	}

	infos := make([]*entity.SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, session.Describe(currentSessionID))
	}

	return infos, nil
}

// GetSession retrieves the descriptor for one session owned by the user.
// A missing session and someone else's session produce the same error so the
// endpoint leaks nothing about other users' sessions.
func (srv *sessionService) GetSession(ctx context.Context, userID, sessionID, currentSessionID uuid.UUID) (*entity.SessionInfo, error) {
	srv.log(ctx).Debug("Getting session", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFoundOrUnauthorized, "session not found")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotFoundOrUnauthorized, "session not owned by caller")
	}

	return session.Describe(currentSessionID), nil
}

// RevokeSession deletes one of the caller's other sessions. Revoking the
// caller's own current session is refused as a structured result; for that
// intent the client must use logout, which also discards its tokens.
func (srv *sessionService) RevokeSession(ctx context.Context, input *usecase.RevokeSessionInput) (*usecase.RevokeSessionResult, error) {
	srv.log(ctx).Info("Revoking session", slog.Any("userID", input.CallerUserID), slog.Any("sessionID", input.SessionID))

	if input.SessionID == input.CurrentSessionID {
		srv.log(ctx).Debug("Refused to revoke current session", slog.Any("sessionID", input.SessionID))

		return &usecase.RevokeSessionResult{
			Success: false,
			Message: "cannot revoke the current session, use logout instead",
		}, nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByID(ctx, input.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrNotFoundOrUnauthorized, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		// Ownership failures look identical to not-found.
		if session.UserID != input.CallerUserID {
			return errors.Wrap(domainerrors.ErrNotFoundOrUnauthorized, "session not owned by caller")
		}

		if err := sessionRepo.Delete(ctx, input.SessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to revoke session", slog.Any("error", err), slog.Any("userID", input.CallerUserID), slog.Any("sessionID", input.SessionID))

		return nil, errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("userID", input.CallerUserID), slog.Any("sessionID", input.SessionID))
	srv.publishRevocation(ctx, service.EventSessionRevoked, input.CallerUserID, &input.SessionID)

	return &usecase.RevokeSessionResult{
		Success: true,
		Message: "session revoked",
	}, nil
}

// RevokeAllSessions deletes every session for the user, including the current
// one, and returns the count deleted.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("userID", userID))

	deleted, err := srv.sessionRepo.DeleteAllByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("userID", userID))

		return 0, errors.Wrap(err, "failed to revoke all sessions")
	}

	srv.log(ctx).Info("All sessions revoked", slog.Any("userID", userID), slog.Int("count", deleted))
	srv.publishRevocation(ctx, service.EventSessionsRevoked, userID, nil)

	return deleted, nil
}

func (srv *sessionService) publishRevocation(ctx context.Context, eventType string, userID uuid.UUID, sessionID *uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     userID,
		SessionID:  sessionID,
		OccurredAt: time.Now(),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event", slog.String("type", eventType), slog.Any("error", err))
	}
}
