// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"keystone/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Device   entity.DeviceContext
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     *entity.Role // Initial role. Nil defaults to USER.
	Device   entity.DeviceContext
}

// RefreshTokenInput defines the data required to rotate a refresh token.
type RefreshTokenInput struct {
	RefreshToken string
	Device       entity.DeviceContext
}

// LogoutInput defines the data required to log out one device session.
type LogoutInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// TokenUser is the user descriptor returned alongside a token pair.
type TokenUser struct {
	ID    uuid.UUID    `json:"id"`
	Email string       `json:"email"`
	Role  *entity.Role `json:"role"`
}

// TokenPairOutput is the result of login, registration, and token refresh.
type TokenPairOutput struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         *TokenUser `json:"user"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies email/password credentials and issues a fresh token pair.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Register creates a user plus email identity and issues a token pair.
	Register(ctx context.Context, input *RegisterInput) (*TokenPairOutput, error)

	// RefreshToken rotates a refresh token: the presented session is destroyed
	// and a new pair is issued. A replayed token fails with ErrInvalidToken.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*TokenPairOutput, error)

	// Logout deletes the session holding the refresh token. Returns false when
	// no such session existed; that is a normal negative, not an error.
	Logout(ctx context.Context, input *LogoutInput) (bool, error)

	// ChangePassword verifies the current password, stores the new hash, and
	// unconditionally revokes every session of the user.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
}
