package removesession_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/core/usecases/removesession"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) Get(ctx context.Context, id uuid.UUID) (session.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(session.Session), args.Error(1) // nolint: forcetypeassert
}

func (m *MockSessionRepository) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRemoveSessionUseCase_OK(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	s := session.NewPurple(uuid.New(), purple.Home, cipher.Encrypt, time.Now())

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, s.ID).Return(s, nil)
	repo.On("Remove", ctx, s.ID).Return(nil)

	uc := removesession.New(repo, &logger)
	err := uc.Execute(ctx, s.ID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRemoveSessionUseCase_NotFound(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	id := uuid.New()

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, id).Return(session.Blank, repositories.ErrSessionNotFound)

	uc := removesession.New(repo, &logger)
	err := uc.Execute(ctx, id)

	assert.ErrorIs(t, err, removesession.ErrSessionNotFound)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestRemoveSessionUseCase_RemoveFails(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	s := session.NewPurple(uuid.New(), purple.Home, cipher.Encrypt, time.Now())

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, s.ID).Return(s, nil)
	repo.On("Remove", ctx, s.ID).Return(errors.New("connection refused"))

	uc := removesession.New(repo, &logger)
	err := uc.Execute(ctx, s.ID)

	assert.ErrorIs(t, err, removesession.ErrUnableToRemoveSession)
	repo.AssertExpectations(t)
}

func TestRemoveSessionUseCase_Busy(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	s := session.NewPurple(uuid.New(), purple.Home, cipher.Encrypt, time.Now())

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, s.ID).Return(s, nil)
	repo.On("Remove", ctx, s.ID).Return(repositories.ErrSessionBusy)

	uc := removesession.New(repo, &logger)
	err := uc.Execute(ctx, s.ID)

	assert.ErrorIs(t, err, removesession.ErrSessionBusy)
	repo.AssertExpectations(t)
}
