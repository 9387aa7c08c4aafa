package impl

import (
	"context"
	"testing"
	"time"

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

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	txManager   *mockRepo.MockTransactionManager
	sessionRepo *mockRepo.MockAuthSessionRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockAuthSessionRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:   txManager,
		SessionRepo: sessionRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:     service,
		txManager:   txManager,
		sessionRepo: sessionRepo,
		publisher:   publisher,
	}
}

func TestSessionService_ListSessions_MarksCurrent(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	current := newTestSession(userID, "current-token", time.Hour)
	other := newTestSession(userID, "other-token", time.Hour)

	fx.sessionRepo.EXPECT().
		FindActiveByUserID(ctx, userID).
		Return([]*entity.AuthSession{current, other}, nil)

	infos, err := fx.service.ListSessions(ctx, userID, current.ID)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(t, infos[0].IsCurrent)
	assert.False(t, infos[1].IsCurrent)
}

// Fetching one of the caller's other sessions must not mark it as current;
// the flag follows the session the caller is authenticated on, not the
// session being looked at.
func TestSessionService_GetSession_MarksOnlyCurrentSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	current := newTestSession(userID, "current-token", time.Hour)
	other := newTestSession(userID, "other-token", time.Hour)

	fx.sessionRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)
	fx.sessionRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)

	otherInfo, err := fx.service.GetSession(ctx, userID, other.ID, current.ID)
	require.NoError(t, err)
	assert.False(t, otherInfo.IsCurrent)

	currentInfo, err := fx.service.GetSession(ctx, userID, current.ID, current.ID)
	require.NoError(t, err)
	assert.True(t, currentInfo.IsCurrent)
}

func TestSessionService_GetSession_ForeignSessionLooksMissing(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	owner := uuid.New()
	caller := uuid.New()
	session := newTestSession(owner, "token", time.Hour)

	fx.sessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)

	info, err := fx.service.GetSession(ctx, caller, session.ID, uuid.New())

	assert.Nil(t, info)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFoundOrUnauthorized))
}

func TestSessionService_GetSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

	info, err := fx.service.GetSession(ctx, uuid.New(), sessionID, uuid.New())

	assert.Nil(t, info)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFoundOrUnauthorized))
}

func TestSessionService_RevokeSession_RefusesCurrentSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	// No transaction is opened; the refusal is decided before touching storage.
	result, err := fx.service.RevokeSession(ctx, &usecase.RevokeSessionInput{
		SessionID:        sessionID,
		CallerUserID:     userID,
		CurrentSessionID: sessionID,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "logout")
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	target := newTestSession(userID, "target-token", time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			mockSessionRepo.EXPECT().Delete(ctx, target.ID).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	result, err := fx.service.RevokeSession(ctx, &usecase.RevokeSessionInput{
		SessionID:        target.ID,
		CallerUserID:     userID,
		CurrentSessionID: uuid.New(),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
}

func TestSessionService_RevokeSession_ForeignSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	target := newTestSession(uuid.New(), "target-token", time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

			return fn(mockFactory)
		}).
		Once()

	result, err := fx.service.RevokeSession(ctx, &usecase.RevokeSessionInput{
		SessionID:        target.ID,
		CallerUserID:     uuid.New(),
		CurrentSessionID: uuid.New(),
	})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFoundOrUnauthorized))
}

func TestSessionService_RevokeSession_MissingSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockAuthSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		}).
		Once()

	result, err := fx.service.RevokeSession(ctx, &usecase.RevokeSessionInput{
		SessionID:        sessionID,
		CallerUserID:     uuid.New(),
		CurrentSessionID: uuid.New(),
	})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFoundOrUnauthorized))
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteAllByUserID(ctx, userID).Return(4, nil)
	fx.publisher.EXPECT().PublishAuthEvent(ctx, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	count, err := fx.service.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
