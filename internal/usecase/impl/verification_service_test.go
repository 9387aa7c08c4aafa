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

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service          usecase.VerificationUsecase
	txManager        *mockRepo.MockTransactionManager
	identityRepo     *mockRepo.MockAuthIdentityRepository
	userRepo         *mockRepo.MockUserRepository
	verificationRepo *mockRepo.MockVerificationTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	publisher        *mockSvc.MockEventPublisher
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockAuthIdentityRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	verificationRepo := mockRepo.NewMockVerificationTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service, err := NewVerificationService(VerificationServiceParams{
		TxManager:        txManager,
		IdentityRepo:     identityRepo,
		UserRepo:         userRepo,
		VerificationRepo: verificationRepo,
		Hasher:           hasher,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})
	require.NoError(t, err)

	return verificationServiceFixtures{
		service:          service,
		txManager:        txManager,
		identityRepo:     identityRepo,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		hasher:           hasher,
		publisher:        publisher,
	}
}

func TestNewVerificationService_RejectsMalformedExpiry(t *testing.T) {
	_, err := NewVerificationService(VerificationServiceParams{
		Config: &config.Config{
			Auth: &config.AuthConfig{VerificationExpiresIn: "7x"},
		},
		Logger: newDiscardLogger(),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestVerificationService_RequestPasswordReset_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := newTestUser()
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, "hash")
	require.NoError(t, err)

	fx.identityRepo.EXPECT().
		FindByProviderAndIdentifier(ctx, entity.ProviderEmail, user.Email).
		Return(identity, nil)
	fx.verificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VerificationToken")).
		Run(func(ctx context.Context, token *entity.VerificationToken) {
			assert.Equal(t, "password-reset:"+user.Email, token.Identifier)
		}).
		Return(nil)

	output, err := fx.service.RequestPasswordReset(ctx, user.Email)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.Token)
	assert.True(t, output.ExpiresAt.After(time.Now()))
}

// Unknown emails succeed with no output so the endpoint cannot be used to
// enumerate accounts.
func TestVerificationService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.identityRepo.EXPECT().
		FindByProviderAndIdentifier(ctx, entity.ProviderEmail, "nobody@example.com").
		Return(nil, repository.ErrIdentityNotFound)

	output, err := fx.service.RequestPasswordReset(ctx, "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestVerificationService_ResetPassword_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := newTestUser()
	identity, err := entity.NewEmailIdentity(user.ID, user.Email, "old_hash")
	require.NoError(t, err)
	token := entity.NewVerificationToken("password-reset:"+user.Email, "token-value", time.Now().Add(time.Hour))

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword456!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword456!").Return("new_hash", nil)

	sessionsRevoked := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVerificationRepo := mockRepo.NewMockVerificationTokenRepository(t)
			mockIdentityRepo := mockRepo.NewMockAuthIdentityRepository(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockVerificationRepo.EXPECT().ConsumeByValue(ctx, "token-value").Return(token, nil)
			mockIdentityRepo.EXPECT().
				FindByProviderAndIdentifier(ctx, entity.ProviderEmail, user.Email).
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
				Return(2, nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err = fx.service.ResetPassword(ctx, "token-value", "NewPassword456!")

	require.NoError(t, err)
	assert.True(t, sessionsRevoked)
}

func TestVerificationService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword456!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword456!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVerificationRepo := mockRepo.NewMockVerificationTokenRepository(t)

			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)
			mockVerificationRepo.EXPECT().
				ConsumeByValue(ctx, "bad-token").
				Return(nil, repository.ErrVerificationTokenNotFound)

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.ResetPassword(ctx, "bad-token", "NewPassword456!")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVerificationToken))
}

// A token issued for email verification must not reset a password.
func TestVerificationService_ResetPassword_PurposeMismatch(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	token := entity.NewVerificationToken("email-verification:test@example.com", "token-value", time.Now().Add(time.Hour))

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword456!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword456!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVerificationRepo := mockRepo.NewMockVerificationTokenRepository(t)

			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)
			mockVerificationRepo.EXPECT().ConsumeByValue(ctx, "token-value").Return(token, nil)

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.ResetPassword(ctx, "token-value", "NewPassword456!")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVerificationToken))
}

func TestVerificationService_RequestEmailVerification_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RequestEmailVerification(ctx, "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestVerificationService_VerifyEmail_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	user := newTestUser()
	token := entity.NewVerificationToken("email-verification:"+user.Email, "token-value", time.Now().Add(time.Hour))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVerificationRepo := mockRepo.NewMockVerificationTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockVerificationRepo.EXPECT().ConsumeByValue(ctx, "token-value").Return(token, nil)
			mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.True(t, updated.EmailVerified)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err := fx.service.VerifyEmail(ctx, "token-value")

	require.NoError(t, err)
}
