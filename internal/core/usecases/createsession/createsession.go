package createsession

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

var (
	ErrInvalidSettings       = errors.New("invalid machine settings")
	ErrUnableToCreateSession = errors.New("unable to create session")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	clock       clockwork.Clock
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

// Request describes the machine to set up.
// Exactly one of Enigma or Purple is expected, matching Machine.
type Request struct {
	Machine   cipher.Machine
	Direction cipher.Direction
	Enigma    *enigma.Settings
	Purple    *purple.State
}

func (uc UseCase) Execute(ctx context.Context, req Request) (session.Session, error) {
	s, err := uc.build(req)
	if err != nil {
		uc.logger.Debug().Err(err).Stringer("machine", req.Machine).Msg("Rejected session settings")
		return session.Blank, err
	}

	if err = uc.sessionRepo.Add(ctx, s); err != nil {
		uc.logger.Error().Err(err).Stringer("session", s).Msg("Failed to store new session")
		return session.Blank, ErrUnableToCreateSession
	}

	uc.metrics.SessionCreated.WithLabelValues(s.Machine.String()).Inc()
	uc.logger.Info().Stringer("session", s).Stringer("direction", s.Direction).Msg("Created session")

	return s, nil
}

func (uc UseCase) build(req Request) (session.Session, error) {
	now := uc.clock.Now()
	switch req.Machine {
	case cipher.Enigma:
		if req.Enigma == nil {
			return session.Blank, ErrInvalidSettings
		}
		s, err := session.NewEnigma(uuid.New(), *req.Enigma, now)
		if err != nil {
			return session.Blank, errors.Join(ErrInvalidSettings, err)
		}
		return s, nil
	case cipher.Purple:
		if req.Purple == nil {
			return session.Blank, ErrInvalidSettings
		}
		direction := req.Direction
		if direction == "" {
			direction = cipher.Encrypt
		}
		return session.NewPurple(uuid.New(), *req.Purple, direction, now), nil
	default:
		return session.Blank, errors.Join(ErrInvalidSettings, cipher.ErrUnknownMachine)
	}
}
