package getsession_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/core/usecases/getsession"
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

func TestGetSessionUseCase_OK(t *testing.T) {
	ctx := context.TODO()

	s := session.NewPurple(uuid.New(), purple.Home, cipher.Encrypt, time.Now())

	repo := new(MockSessionRepository)
	repo.On("Get", ctx, s.ID).Return(s, nil)

	uc := getsession.New(repo)
	got, err := uc.Execute(ctx, s.ID)

	assert.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, purple.Home, got.Switches)

	repo.AssertExpectations(t)
}

func TestGetSessionUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			"not found",
			repositories.ErrSessionNotFound,
			getsession.ErrSessionNotFound,
		},
		{
			"repo failure",
			errors.New("connection refused"),
			getsession.ErrUnableToObtainSession,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			id := uuid.New()

			repo := new(MockSessionRepository)
			repo.On("Get", ctx, id).Return(session.Blank, tt.repoErr)

			uc := getsession.New(repo)
			_, err := uc.Execute(ctx, id)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}
