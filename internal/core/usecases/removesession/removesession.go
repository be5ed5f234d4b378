package removesession

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/repositories"
)

var (
	ErrSessionNotFound       = errors.New("the requested session was not found")
	ErrSessionBusy           = errors.New("session is busy")
	ErrUnableToRemoveSession = errors.New("unable to remove session")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, id uuid.UUID) error {
	s, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			uc.logger.Info().Stringer("session", id).Msg("Removed session not found")
			return ErrSessionNotFound
		}
		return ErrUnableToRemoveSession
	}

	if err = uc.sessionRepo.Remove(ctx, s.ID); err != nil {
		if errors.Is(err, repositories.ErrSessionBusy) {
			uc.logger.Info().Stringer("session", s).Msg("Removed session is busy with a key press")
			return ErrSessionBusy
		}
		uc.logger.Error().Err(err).Stringer("session", s).Msg("Failed to remove session")
		return ErrUnableToRemoveSession
	}

	uc.logger.Info().Stringer("session", s).Msg("Removed session on request")

	return nil
}
