// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
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

// opaqueTokenBytes is the entropy of a refresh or verification token before
// encoding.
const opaqueTokenBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	identityRepo      repository.AuthIdentityRepository
	sessionRepo       repository.AuthSessionRepository
	userRepo          repository.UserRepository
	roleRepo          repository.UserRoleRepository
	hasher            service.PasswordHasher
	tokenIssuer       service.TokenIssuer
	publisher         service.EventPublisher
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.AuthIdentityRepository
	SessionRepo  repository.AuthSessionRepository
	UserRepo     repository.UserRepository
	RoleRepo     repository.UserRoleRepository
	Hasher       service.PasswordHasher
	TokenIssuer  service.TokenIssuer
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		identityRepo:      params.IdentityRepo,
		sessionRepo:       params.SessionRepo,
		userRepo:          params.UserRepo,
		roleRepo:          params.RoleRepo,
		hasher:            params.Hasher,
		tokenIssuer:       params.TokenIssuer,
		publisher:         params.Publisher,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies email/password credentials and opens a new device session.
// Every credential failure (unknown email, non-password identity, wrong
// password) surfaces as the same ErrInvalidCredentials so callers cannot
// probe which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	identity, err := srv.loadLoginIdentity(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if identity.PasswordHash == nil || !srv.hasher.Check(input.Password, *identity.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Record the successful use of this credential.
	identity.Touch()
	if err := srv.identityRepo.Save(ctx, identity); err != nil {
		srv.log(ctx).Error("Login failed to persist identity", slog.Any("identityID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist identity during login")
	}

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		srv.log(ctx).Error("Login failed to load user", slog.Any("userID", identity.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	output, session, err := srv.issueLoginTokens(ctx, user, identity.AccountID, input.Device)
	if err != nil {
		srv.log(ctx).Error("Login failed to issue tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue tokens during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID), slog.Any("sessionID", session.ID))
	srv.publish(ctx, service.EventUserLoggedIn, user.ID, &session.ID, input.Device)

	return output, nil
}

// loadLoginIdentity reads the email identity from the primary in a short
// transaction. An absent identity is reported as invalid credentials.
func (srv *authService) loadLoginIdentity(ctx context.Context, email string) (*entity.AuthIdentity, error) {
	var identity *entity.AuthIdentity

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		identity, findErr = repoFactory.IdentityRepo().FindByProviderAndIdentifier(ctx, entity.ProviderEmail, entity.NormalizeAccountID(email))
		if findErr != nil {
			if errors.Is(findErr, repository.ErrIdentityNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find identity")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login identity transaction")
	}

	return identity, nil
}

// issueLoginTokens persists the login session. With a session limit enabled
// the count and insert must share one transaction; without one a direct
// insert avoids the transaction overhead.
func (srv *authService) issueLoginTokens(ctx context.Context, user *entity.User, email string, device entity.DeviceContext) (*usecase.TokenPairOutput, *entity.AuthSession, error) {
	if srv.maxActiveSessions > 0 {
		var (
			output  *usecase.TokenPairOutput
			session *entity.AuthSession
		)

		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			output, session, err = srv.issueTokens(ctx, repoFactory.SessionRepo(), repoFactory.RoleRepo(), user, email, device)

			return err
		}); err != nil {
			return nil, nil, errors.Wrap(err, "failed to execute login session transaction")
		}

		return output, session, nil
	}

	return srv.issueTokens(ctx, srv.sessionRepo, srv.roleRepo, user, email, device)
}

// Register creates the user, email identity, and first session in a single
// transaction. A duplicate identifier aborts the whole registration.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	role := entity.RoleUser
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
		}
		role = *input.Role
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var (
		registeredUser *entity.User
		output         *usecase.TokenPairOutput
		session        *entity.AuthSession
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		userRepo := repoFactory.UserRepo()

		exists, err := identityRepo.ExistsByIdentifier(ctx, entity.NormalizeAccountID(input.Email))
		if err != nil {
			return errors.Wrap(err, "failed to check identifier uniqueness")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrDuplicateIdentity, "identifier already registered")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: entity.NormalizeAccountID(input.Email),
			Role:  &role,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newIdentity, err := entity.NewEmailIdentity(newUser.ID, input.Email, hashedPassword)
		if err != nil {
			return errors.Wrap(err, "failed to build email identity")
		}
		if err := identityRepo.Save(ctx, newIdentity); err != nil {
			return errors.Wrap(err, "failed to create identity during registration")
		}

		output, session, err = srv.issueTokens(ctx, repoFactory.SessionRepo(), repoFactory.RoleRepo(), newUser, newIdentity.AccountID, input.Device)
		if err != nil {
			return errors.Wrap(err, "failed to issue tokens during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))
	srv.publish(ctx, service.EventUserRegistered, registeredUser.ID, &session.ID, input.Device)

	return output, nil
}

// RefreshToken rotates the presented refresh token. The old session is
// destroyed and a fresh one opened atomically; replaying a rotated token
// finds no session and fails with ErrInvalidToken.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Attempting to rotate refresh token")

	var (
		output  *usecase.TokenPairOutput
		session *entity.AuthSession
		userID  uuid.UUID
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		// Single conditional delete. Of two concurrent presenters of the same
		// token exactly one observes the session; the other falls into the
		// not-found branch.
		oldSession, err := sessionRepo.DeleteByToken(ctx, input.RefreshToken)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidToken, "refresh token not recognized")
			}

			return errors.Wrap(err, "failed to delete session by token")
		}

		// The expired session is already gone; nothing new is issued for it.
		if oldSession.IsExpired() {
			return errors.Wrap(domainerrors.ErrInvalidToken, "refresh token expired")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, oldSession.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user during refresh")
		}
		userID = user.ID

		// The new access token carries the email of the live email identity,
		// not the user record, so the two cannot drift apart across refreshes.
		email := user.Email
		identity, err := repoFactory.IdentityRepo().FindByUserIDAndProvider(ctx, oldSession.UserID, entity.ProviderEmail)
		if err != nil && !errors.Is(err, repository.ErrIdentityNotFound) {
			return errors.Wrap(err, "failed to load email identity during refresh")
		}
		if identity != nil {
			email = identity.AccountID
		}

		output, session, err = srv.issueTokens(ctx, sessionRepo, repoFactory.RoleRepo(), user, email, input.Device)
		if err != nil {
			return errors.Wrap(err, "failed to issue tokens during refresh")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh token rotation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", userID), slog.Any("sessionID", session.ID))
	srv.publish(ctx, service.EventTokenRefreshed, userID, &session.ID, input.Device)

	return output, nil
}

// Logout deletes the session holding the refresh token. An unknown token is
// reported as false rather than an error; logout is idempotent from the
// caller's point of view.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) (bool, error) {
	srv.log(ctx).Debug("Attempting to log out")

	session, err := srv.sessionRepo.DeleteByToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Debug("Logout with unknown refresh token")

			return false, nil
		}
		srv.log(ctx).Error("Failed to delete session during logout", slog.Any("error", err))

		return false, errors.Wrap(err, "failed to delete session during logout")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", session.UserID), slog.Any("sessionID", session.ID))
	srv.publish(ctx, service.EventUserLoggedOut, session.UserID, &session.ID, entity.DeviceContext{})

	return true, nil
}

// ChangePassword verifies the current password, stores the new hash, and
// revokes every session of the user. All devices must log in again with the
// new password.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Attempting password change", slog.Any("userID", input.UserID))

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		srv.log(ctx).Warn("New password rejected", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrValidationFailed, "new password does not meet security requirements")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		identity, err := identityRepo.FindByUserIDAndProvider(ctx, input.UserID, entity.ProviderEmail)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "no password identity for user")
			}

			return errors.Wrap(err, "failed to find email identity")
		}

		if identity.PasswordHash == nil || !srv.hasher.Check(input.CurrentPassword, *identity.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
		}

		if err := identity.ChangePassword(newHash); err != nil {
			return errors.Wrap(err, "failed to apply new password")
		}
		if err := identityRepo.Save(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to persist new password")
		}

		// Every open session rides on the old credential; drop them all.
		deleted, err := repoFactory.SessionRepo().DeleteAllByUserID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to revoke sessions after password change")
		}
		srv.log(ctx).Debug("Revoked sessions after password change", slog.Any("userID", input.UserID), slog.Int("count", deleted))

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))
	srv.publish(ctx, service.EventPasswordChanged, input.UserID, nil, entity.DeviceContext{})

	return nil
}

// issueTokens opens a device session holding a fresh random refresh token and
// signs an access token bound to it. The session is persisted before the
// access token is minted so the token never references a session that does
// not exist. The role travels through the role port rather than the user
// record passed in.
func (srv *authService) issueTokens(ctx context.Context, sessionRepo repository.AuthSessionRepository, roleRepo repository.UserRoleRepository, user *entity.User, email string, device entity.DeviceContext) (*usecase.TokenPairOutput, *entity.AuthSession, error) {
	role, err := roleRepo.GetRole(ctx, user.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load role")
	}

	if srv.maxActiveSessions > 0 {
		active, err := sessionRepo.CountActiveByUserID(ctx, user.ID)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to count active sessions")
		}
		if active >= srv.maxActiveSessions {
			return nil, nil, errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate refresh token")
	}

	session := entity.NewSession(user.ID, refreshToken, time.Now().Add(srv.tokenIssuer.RefreshTokenDuration()), device)
	if err := sessionRepo.Save(ctx, session); err != nil {
		return nil, nil, errors.Wrap(err, "failed to store session")
	}

	var roles entity.Roles
	if role != nil {
		roles = entity.Roles{*role}
	}

	accessToken, err := srv.tokenIssuer.Sign(user.ID, email, roles.ToStrings(), session.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: &usecase.TokenUser{
			ID:    user.ID,
			Email: email,
			Role:  role,
		},
	}, session, nil
}

// generateOpaqueToken returns an opaque URL-safe random token.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// publish emits an audit event after the operation's transaction has
// committed. Publish failures are logged, never surfaced to the caller.
func (srv *authService) publish(ctx context.Context, eventType string, userID uuid.UUID, sessionID *uuid.UUID, device entity.DeviceContext) {
	if srv.publisher == nil {
		return
	}

	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     userID,
		SessionID:  sessionID,
		IPAddress:  device.IPAddress,
		UserAgent:  device.UserAgent,
		OccurredAt: time.Now(),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event", slog.String("type", eventType), slog.Any("error", err))
	}
}
