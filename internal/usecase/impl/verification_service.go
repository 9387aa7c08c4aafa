// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"keystone/config"
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

// Verification identifiers are scoped by purpose so a password-reset token
// can never be consumed as an email-verification token, and each purpose
// keeps its own single live token per email.
const (
	purposePasswordReset     = "password-reset:"
	purposeEmailVerification = "email-verification:"

	defaultVerificationExpiresIn = "1h"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager        repository.TransactionManager
	identityRepo     repository.AuthIdentityRepository
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationTokenRepository
	hasher           service.PasswordHasher
	publisher        service.EventPublisher
	tokenTTL         time.Duration
	logger           *slog.Logger
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	IdentityRepo     repository.AuthIdentityRepository
	UserRepo         repository.UserRepository
	VerificationRepo repository.VerificationTokenRepository
	Hasher           service.PasswordHasher
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) (usecase.VerificationUsecase, error) {
	expiresIn := defaultVerificationExpiresIn
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerificationExpiresIn != "" {
		expiresIn = params.Config.Auth.VerificationExpiresIn
	}

	tokenTTL, err := config.ParseExpiry(expiresIn)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, err.Error())
	}

	return &verificationService{
		txManager:        params.TxManager,
		identityRepo:     params.IdentityRepo,
		userRepo:         params.UserRepo,
		verificationRepo: params.VerificationRepo,
		hasher:           params.Hasher,
		publisher:        params.Publisher,
		tokenTTL:         tokenTTL,
		logger:           params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestPasswordReset issues a single-use reset token for the email's
// identity. When no such identity exists the call still succeeds, with a nil
// output, so the endpoint cannot be used to enumerate accounts.
func (srv *verificationService) RequestPasswordReset(ctx context.Context, email string) (*usecase.VerificationIssueOutput, error) {
	srv.log(ctx).Info("Password reset requested", slog.String("email", email))

	normalized := entity.NormalizeAccountID(email)

	_, err := srv.identityRepo.FindByProviderAndIdentifier(ctx, entity.ProviderEmail, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find identity for password reset")
	}

	return srv.issueVerificationToken(ctx, purposePasswordReset+normalized)
}

// ResetPassword consumes a reset token, stores the new password hash, and
// revokes every session of the user.
func (srv *verificationService) ResetPassword(ctx context.Context, tokenValue, newPassword string) error {
	srv.log(ctx).Info("Attempting password reset")

	if err := srv.hasher.ValidatePasswordStrength(newPassword); err != nil {
		srv.log(ctx).Warn("New password rejected during reset", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrValidationFailed, "new password does not meet security requirements")
	}

	newHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	var userID uuid.UUID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		email, err := srv.consumeToken(ctx, repoFactory, tokenValue, purposePasswordReset)
		if err != nil {
			return err
		}

		identityRepo := repoFactory.IdentityRepo()
		identity, err := identityRepo.FindByProviderAndIdentifier(ctx, entity.ProviderEmail, email)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidVerificationToken, "identity no longer exists")
			}

			return errors.Wrap(err, "failed to find identity for password reset")
		}

		if err := identity.ChangePassword(newHash); err != nil {
			return errors.Wrap(err, "failed to apply new password")
		}
		if err := identityRepo.Save(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to persist new password")
		}

		deleted, err := repoFactory.SessionRepo().DeleteAllByUserID(ctx, identity.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to revoke sessions after password reset")
		}
		srv.log(ctx).Debug("Revoked sessions after password reset", slog.Any("userID", identity.UserID), slog.Int("count", deleted))

		userID = identity.UserID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))
	srv.publishEvent(ctx, service.EventPasswordReset, userID)

	return nil
}

// RequestEmailVerification issues a verification token for the user's email.
func (srv *verificationService) RequestEmailVerification(ctx context.Context, email string) (*usecase.VerificationIssueOutput, error) {
	srv.log(ctx).Info("Email verification requested", slog.String("email", email))

	normalized := entity.NormalizeAccountID(email)

	_, err := srv.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Email verification requested for unknown email")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user for email verification")
	}

	return srv.issueVerificationToken(ctx, purposeEmailVerification+normalized)
}

// VerifyEmail consumes a verification token and marks the user's email
// verified.
func (srv *verificationService) VerifyEmail(ctx context.Context, tokenValue string) error {
	srv.log(ctx).Info("Attempting email verification")

	var userID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		email, err := srv.consumeToken(ctx, repoFactory, tokenValue, purposeEmailVerification)
		if err != nil {
			return err
		}

		userRepo := repoFactory.UserRepo()
		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidVerificationToken, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user for email verification")
		}

		user.EmailVerified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		userID = user.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", userID))
	srv.publishEvent(ctx, service.EventEmailVerified, userID)

	return nil
}

// issueVerificationToken stores a fresh token for the identifier, replacing
// any previously issued one, and returns it for out-of-band delivery.
func (srv *verificationService) issueVerificationToken(ctx context.Context, identifier string) (*usecase.VerificationIssueOutput, error) {
	value, err := generateOpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}

	token := entity.NewVerificationToken(identifier, value, time.Now().Add(srv.tokenTTL))
	if err := srv.verificationRepo.Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store verification token")
	}

	return &usecase.VerificationIssueOutput{
		Token:     value,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// consumeToken atomically consumes a token and returns the email embedded in
// its purpose-scoped identifier. A token issued for a different purpose is
// treated as unknown.
func (srv *verificationService) consumeToken(ctx context.Context, repoFactory repository.RepositoryFactory, tokenValue, purpose string) (string, error) {
	token, err := repoFactory.VerificationRepo().ConsumeByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationTokenNotFound) {
			return "", errors.Wrap(domainerrors.ErrInvalidVerificationToken, "verification token not recognized")
		}

		return "", errors.Wrap(err, "failed to consume verification token")
	}

	if !strings.HasPrefix(token.Identifier, purpose) {
		return "", errors.Wrap(domainerrors.ErrInvalidVerificationToken, "verification token purpose mismatch")
	}

	return strings.TrimPrefix(token.Identifier, purpose), nil
}

func (srv *verificationService) publishEvent(ctx context.Context, eventType string, userID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now(),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event", slog.String("type", eventType), slog.Any("error", err))
	}
}
