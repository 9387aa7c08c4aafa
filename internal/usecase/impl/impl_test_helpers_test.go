package impl

import (
	"io"
	"log/slog"
	"time"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser() *entity.User {
	role := entity.RoleUser

	return &entity.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "test@example.com",
		Role:  &role,
	}
}

func newTestSession(userID uuid.UUID, token string, expiresIn time.Duration) *entity.AuthSession {
	return entity.NewSession(userID, token, time.Now().Add(expiresIn), entity.DeviceContext{})
}
