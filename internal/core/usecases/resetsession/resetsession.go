package resetsession

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionBusy          = errors.New("session is busy")
	ErrUnableToResetSession = errors.New("unable to reset session")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	clock       clockwork.Clock
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Execute puts the machine back to the positions the session was created with.
func (uc UseCase) Execute(ctx context.Context, id uuid.UUID) (session.Session, error) {
	s, err := uc.sessionRepo.Modify(ctx, id, func(s *session.Session) error {
		s.Reset(uc.clock.Now())
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return session.Blank, ErrSessionNotFound
		case errors.Is(err, repositories.ErrSessionBusy):
			return session.Blank, ErrSessionBusy
		default:
			uc.logger.Error().Err(err).Stringer("session", id).Msg("Failed to reset session")
			return session.Blank, ErrUnableToResetSession
		}
	}

	uc.logger.Info().Stringer("session", s).Msg("Reset session")

	return s, nil
}
