package createsession_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/core/usecases/createsession"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) Add(ctx context.Context, s session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestCreateSessionUseCase_Enigma(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	clock := clockwork.NewFakeClock()
	collector := metrics.New()

	repo := new(MockSessionRepository)
	repo.On("Add", ctx, mock.Anything).Return(nil)

	uc := createsession.New(repo, clock, collector, &logger)
	s, err := uc.Execute(ctx, createsession.Request{
		Machine: cipher.Enigma,
		Enigma: &enigma.Settings{
			Rotors:    [3]string{"I", "II", "III"},
			Positions: [3]int{27, 0, -1},
			Reflector: "B",
			Plugs:     "ba dc",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, cipher.Enigma, s.Machine)
	assert.Equal(t, cipher.Encrypt, s.Direction)
	assert.Equal(t, "BAZ", s.Windows())
	assert.Equal(t, "AB CD", s.Enigma.Plugs)
	assert.Equal(t, clock.Now(), s.CreatedAt)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.SessionCreated.WithLabelValues("enigma")))

	repo.AssertCalled(t, "Add", ctx, mock.MatchedBy(func(stored session.Session) bool {
		return stored.ID == s.ID && stored.Windows() == "BAZ"
	}))
}

func TestCreateSessionUseCase_Purple(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	clock := clockwork.NewFakeClock()
	collector := metrics.New()

	repo := new(MockSessionRepository)
	repo.On("Add", ctx, mock.Anything).Return(nil)

	uc := createsession.New(repo, clock, collector, &logger)
	s, err := uc.Execute(ctx, createsession.Request{
		Machine:   cipher.Purple,
		Direction: cipher.Decrypt,
		Purple:    &purple.State{Fast: 21, Medium: 5, Slow: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, cipher.Purple, s.Machine)
	assert.Equal(t, cipher.Decrypt, s.Direction)
	assert.Equal(t, purple.State{Fast: 1, Medium: 5, Slow: 20}, s.Switches)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.SessionCreated.WithLabelValues("purple")))

	repo.AssertExpectations(t)
}

func TestCreateSessionUseCase_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		req  createsession.Request
	}{
		{
			"enigma without settings",
			createsession.Request{Machine: cipher.Enigma},
		},
		{
			"purple without settings",
			createsession.Request{Machine: cipher.Purple},
		},
		{
			"unknown machine",
			createsession.Request{Machine: "lorenz", Purple: &purple.Home},
		},
		{
			"unknown rotor",
			createsession.Request{
				Machine: cipher.Enigma,
				Enigma:  &enigma.Settings{Rotors: [3]string{"I", "II", "VIII"}, Reflector: "B"},
			},
		},
		{
			"plugboard overflow",
			createsession.Request{
				Machine: cipher.Enigma,
				Enigma: &enigma.Settings{
					Rotors:    [3]string{"I", "II", "III"},
					Reflector: "B",
					Plugs:     "AB CD EF GH IJ KL MN OP QR ST UV WX YZ AZ",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			logger := zerolog.Nop()
			collector := metrics.New()

			repo := new(MockSessionRepository)

			uc := createsession.New(repo, clockwork.NewFakeClock(), collector, &logger)
			_, err := uc.Execute(ctx, tt.req)

			assert.ErrorIs(t, err, createsession.ErrInvalidSettings)
			assert.Equal(t, float64(0), testutil.ToFloat64(collector.SessionCreated.WithLabelValues("enigma")))
			repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateSessionUseCase_RepoError(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	repo := new(MockSessionRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := createsession.New(repo, clockwork.NewFakeClock(), metrics.New(), &logger)
	_, err := uc.Execute(ctx, createsession.Request{
		Machine: cipher.Purple,
		Purple:  &purple.Home,
	})

	assert.ErrorIs(t, err, createsession.ErrUnableToCreateSession)
	repo.AssertExpectations(t)
}
