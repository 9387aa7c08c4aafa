// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"
)

// VerificationIssueOutput returns the issued token for out-of-band delivery.
// The mail/SMS collaborator that delivers it is outside this module.
type VerificationIssueOutput struct {
	Token     string
	ExpiresAt time.Time
}

// VerificationUsecase drives the single-use verification token flows:
// password reset and email verification.
type VerificationUsecase interface {
	// RequestPasswordReset issues a reset token for the email's identity.
	// Any previously issued token for the same email is replaced. To avoid
	// account enumeration the call succeeds with a nil output when no email
	// identity exists.
	RequestPasswordReset(ctx context.Context, email string) (*VerificationIssueOutput, error)

	// ResetPassword consumes a reset token, stores the new password hash on
	// the email identity, and revokes all of the user's sessions.
	ResetPassword(ctx context.Context, tokenValue, newPassword string) error

	// RequestEmailVerification issues a verification token for the user's email.
	RequestEmailVerification(ctx context.Context, email string) (*VerificationIssueOutput, error)

	// VerifyEmail consumes a verification token and marks the email verified.
	VerifyEmail(ctx context.Context, tokenValue string) error
}
