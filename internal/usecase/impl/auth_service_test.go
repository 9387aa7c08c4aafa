package impl

import (
	"context"
	"testing"
	"time"

	"keystone/config"
	"keystone/internal/domain/entity"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/repository"
	mockRepo "keystone/internal/mocks/repository"
	mockSvc "keystone/internal/mocks/service"
	"keystone/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockAuthIdentityRepository
	sessionRepo  *mockRepo.MockAuthSessionRepository
	userRepo     *mockRepo.MockUserRepository
	roleRepo     *mockRepo.MockUserRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenIssuer  *mockSvc.MockTokenIssuer
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	return createTestAuthServiceWithConfig(t, &config.Config{})
}

func createTestAuthServiceWithConfig(t *testing.T, cfg *config.Config) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockAuthIdentityRepository(t)
	sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockUserRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenIssuer := mockSvc.NewMockTokenIssuer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		IdentityRepo: identityRepo,
		SessionRepo:  sessionRepo,
		UserRepo:     userRepo,
		RoleRepo:     roleRepo,
		Hasher:       hasher,
		TokenIssuer:  tokenIssuer,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		publisher:    publisher,
	}
}

// expectIdentityLookup wires the short login transaction to return the given
// identity lookup outcome.
func expectIdentityLookup(t *testing.T, fx authServiceFixtures, email string, identity *entity.AuthIdentity, findErr error) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockIdentityRepo.EXPECT().
				FindByProviderAndIdentifier(mock.Anything, entity.ProviderEmail, entity.NormalizeAccountID(email)).
				Return(identity, findErr)

			return fn(mockFactory)
		}).
		Once()
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	hash := "hashed_password"
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, hash)
	require.NoError(t, err)

	input := &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	}

	expectIdentityLookup(t, fx, user.Email, identity, nil)
	fx.hasher.EXPECT().Check(input.Password, hash).Return(true)
	fx.identityRepo.EXPECT().
		Save(ctx, identity).
		Run(func(ctx context.Context, saved *entity.AuthIdentity) {
			assert.False(t, saved.UpdatedAt.Before(saved.CreatedAt))
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.roleRepo.EXPECT().GetRole(ctx, user.ID).Return(user.Role, nil)
	fx.tokenIssuer.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	fx.sessionRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.AuthSession")).Return(nil)
	fx.tokenIssuer.EXPECT().
		Sign(user.ID, user.Email, []string{"USER"}, mock.AnythingOfType("uuid.UUID")).
		Return("signed.access.token", nil)
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.access.token", output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	expectIdentityLookup(t, fx, input.Email, nil, repository.ErrIdentityNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	hash := "hashed_password"
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, hash)
	require.NoError(t, err)

	input := &usecase.LoginInput{
		Email:    user.Email,
		Password: "not-the-password",
	}

	expectIdentityLookup(t, fx, user.Email, identity, nil)
	fx.hasher.EXPECT().Check(input.Password, hash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// An unknown email and a wrong password must surface as the same sentinel so
// responses cannot be used to probe which accounts exist.
func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expectIdentityLookup(t, fx, "nobody@example.com", nil, repository.ErrIdentityNotFound)
	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

	user := newTestUser()
	hash := "hashed_password"
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, hash)
	require.NoError(t, err)

	expectIdentityLookup(t, fx, user.Email, identity, nil)
	fx.hasher.EXPECT().Check("wrong", hash).Return(false)
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, errors.Cause(unknownEmailErr), errors.Cause(wrongPasswordErr))
}

func TestAuthService_Login_PasswordlessIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	// An OAuth identity has no password hash; a password login against it
	// must fail like any other bad credential.
	identity := &entity.AuthIdentity{
		ID:        uuid.New(),
		UserID:    user.ID,
		Provider:  entity.ProviderGoogle,
		AccountID: entity.NormalizeAccountID(user.Email),
	}

	expectIdentityLookup(t, fx, user.Email, identity, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_EnforcesSessionLimit(t *testing.T) {
	fx := createTestAuthServiceWithConfig(t, &config.Config{
		Auth: &config.AuthConfig{MaxActiveSessions: 1},
	})

	ctx := context.Background()
	user := newTestUser()
	hash := "hashed_password"
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, hash)
	require.NoError(t, err)

	expectIdentityLookup(t, fx, user.Email, identity, nil)
	fx.hasher.EXPECT().Check("Password123!", hash).Return(true)
	fx.identityRepo.EXPECT().Save(ctx, identity).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	// With a limit configured the count and insert share one transaction.
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)
			mockRoleRepo := mockRepo.NewMockUserRoleRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockRoleRepo.EXPECT().GetRole(ctx, user.ID).Return(user.Role, nil)
			// The user already holds as many sessions as allowed; nothing may
			// be saved.
			mockSessionRepo.EXPECT().CountActiveByUserID(ctx, user.ID).Return(1, nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.tokenIssuer.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	fx.tokenIssuer.EXPECT().
		Sign(mock.AnythingOfType("uuid.UUID"), "test@example.com", []string{"USER"}, mock.AnythingOfType("uuid.UUID")).
		Return("signed.access.token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)
			mockRoleRepo := mockRepo.NewMockUserRoleRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			role := entity.RoleUser
			mockRoleRepo.EXPECT().GetRole(ctx, mock.AnythingOfType("uuid.UUID")).Return(&role, nil)
			mockIdentityRepo.EXPECT().ExistsByIdentifier(ctx, "test@example.com").Return(false, nil)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "test@example.com", user.Email)
				}).
				Return(nil)
			mockIdentityRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.AuthIdentity")).Return(nil)
			mockSessionRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.AuthSession")).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.NotEmpty(t, output.RefreshToken)
}

func TestAuthService_Register_DuplicateIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockIdentityRepo.EXPECT().ExistsByIdentifier(ctx, "taken@example.com").Return(true, nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(errors.New("too short"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	badRole := entity.Role("SUPERVISOR")
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     &badRole,
	}

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	oldSession := newTestSession(user.ID, "old-refresh-token", time.Hour)
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, "hashed_password")
	require.NoError(t, err)

	fx.tokenIssuer.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	fx.tokenIssuer.EXPECT().
		Sign(user.ID, user.Email, []string{"USER"}, mock.AnythingOfType("uuid.UUID")).
		Return("signed.access.token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)
			mockRoleRepo := mockRepo.NewMockUserRoleRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockSessionRepo.EXPECT().DeleteByToken(ctx, "old-refresh-token").Return(oldSession, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockIdentityRepo.EXPECT().
				FindByUserIDAndProvider(ctx, user.ID, entity.ProviderEmail).
				Return(identity, nil)
			mockRoleRepo.EXPECT().GetRole(ctx, user.ID).Return(user.Role, nil)
			mockSessionRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.AuthSession")).
				Run(func(ctx context.Context, session *entity.AuthSession) {
					assert.NotEqual(t, oldSession.Token, session.Token)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh-token"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEqual(t, "old-refresh-token", output.RefreshToken)
}

// The rotated access token must carry the email identity's identifier, not a
// stale copy on the user record.
func TestAuthService_RefreshToken_UsesIdentityEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	user.Email = "stale@example.com"
	oldSession := newTestSession(user.ID, "old-refresh-token", time.Hour)
	identity, err := entity.NewEmailIdentity(user.ID, "current@example.com", "hashed_password")
	require.NoError(t, err)

	fx.tokenIssuer.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	fx.tokenIssuer.EXPECT().
		Sign(user.ID, "current@example.com", []string{"USER"}, mock.AnythingOfType("uuid.UUID")).
		Return("signed.access.token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)
			mockRoleRepo := mockRepo.NewMockUserRoleRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockSessionRepo.EXPECT().DeleteByToken(ctx, "old-refresh-token").Return(oldSession, nil)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockIdentityRepo.EXPECT().
				FindByUserIDAndProvider(ctx, user.ID, entity.ProviderEmail).
				Return(identity, nil)
			mockRoleRepo.EXPECT().GetRole(ctx, user.ID).Return(user.Role, nil)
			mockSessionRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.AuthSession")).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "current@example.com", output.User.Email)
}

func TestAuthService_RefreshToken_ReplayFails(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			// The rotation already consumed the session; the replay sees nothing.
			mockSessionRepo.EXPECT().DeleteByToken(ctx, "already-rotated").Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "already-rotated"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_RefreshToken_ExpiredSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	expiredSession := newTestSession(user.ID, "expired-token", -time.Minute)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().DeleteByToken(ctx, "expired-token").Return(expiredSession, nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "expired-token"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	session := newTestSession(user.ID, "refresh-token", time.Hour)

	fx.sessionRepo.EXPECT().DeleteByToken(ctx, "refresh-token").Return(session, nil)
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	ok, err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_Logout_UnknownTokenIsNotAnError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteByToken(ctx, "unknown-token").Return(nil, repository.ErrSessionNotFound)

	ok, err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "unknown-token"})

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_ChangePassword_RevokesAllSessions(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	oldHash := "old_hash"
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, oldHash)
	require.NoError(t, err)

	input := &usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "OldPassword123!",
		NewPassword:     "NewPassword456!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, oldHash).Return(true)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

	sessionsRevoked := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockIdentityRepo.EXPECT().
				FindByUserIDAndProvider(ctx, user.ID, entity.ProviderEmail).
				Return(identity, nil)
			mockIdentityRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.AuthIdentity")).
				Run(func(ctx context.Context, saved *entity.AuthIdentity) {
					require.NotNil(t, saved.PasswordHash)
					assert.Equal(t, "new_hash", *saved.PasswordHash)
				}).
				Return(nil)
			mockSessionRepo.EXPECT().
				DeleteAllByUserID(ctx, user.ID).
				Run(func(ctx context.Context, userID uuid.UUID) {
					sessionsRevoked = true
				}).
				Return(3, nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err = fx.service.ChangePassword(ctx, input)

	require.NoError(t, err)
	assert.True(t, sessionsRevoked)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser()
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, "old_hash")
	require.NoError(t, err)

	input := &usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword456!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockIdentityRepo.EXPECT().
				FindByUserIDAndProvider(ctx, user.ID, entity.ProviderEmail).
				Return(identity, nil)

			return fn(mockFactory)
		}).
		Once()

	err = fx.service.ChangePassword(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
