package handler

import (
	"log/slog"
	"net/http"

	"keystone/internal/delivery/http/middleware"
	"keystone/internal/delivery/http/response"
	"keystone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session management handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's active sessions, marking the current one.
func (h *SessionHandler) List(c echo.Context) error {
	userID, sessionID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), userID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "Sessions retrieved")
}

// Get returns one of the caller's sessions by ID.
func (h *SessionHandler) Get(c echo.Context) error {
	userID, currentSessionID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	info, err := h.uc.GetSession(c.Request().Context(), userID, sessionID, currentSessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "Session retrieved")
}

// Revoke deletes one of the caller's other sessions.
func (h *SessionHandler) Revoke(c echo.Context) error {
	userID, currentSessionID, err := callerIdentity(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	result, err := h.uc.RevokeSession(c.Request().Context(), &usecase.RevokeSessionInput{
		SessionID:        sessionID,
		CallerUserID:     userID,
		CurrentSessionID: currentSessionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}

	return response.Success(c, status, result, "Revocation processed")
}

// RevokeAll deletes every session of the caller, including the current one.
func (h *SessionHandler) RevokeAll(c echo.Context) error {
	userID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	count, err := h.uc.RevokeAllSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"revoked": count}, "All sessions revoked")
}

// callerIdentity extracts the authenticated user and session from the context
// set by the auth middleware.
func callerIdentity(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	sessionID, ok := c.Get(middleware.ContextKeySessionID).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Missing session context")
	}

	return userID, sessionID, nil
}
