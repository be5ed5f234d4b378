package presskeys

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/internal/settings"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionBusy       = errors.New("session is busy")
	ErrUnableToPressKeys = errors.New("unable to press keys")
	ErrNoKeys            = errors.New("no keys to press")
	errNothingWasPressed = errors.New("none of the keys is a letter")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	settings    settings.Settings
	clock       clockwork.Clock
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	settings settings.Settings,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		settings:    settings,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

type Request struct {
	SessionID uuid.UUID
	Keys      string
}

type Response struct {
	Lamps   string
	Session session.Session
}

var NoResponse = Response{}

// Execute types the keys on the session's machine one after another.
// Keys that are not letters are skipped without moving the machine.
// When none of the keys is a letter, the session is left untouched.
func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Keys == "" {
		return NoResponse, ErrNoKeys
	}

	var lamps string
	s, err := uc.sessionRepo.Modify(ctx, req.SessionID, func(s *session.Session) error {
		var pressErr error
		if lamps, pressErr = s.Press(req.Keys, uc.settings.TapeLength, uc.clock.Now()); pressErr != nil {
			return pressErr
		}
		if lamps == "" {
			return errNothingWasPressed
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errNothingWasPressed):
			return uc.unchanged(ctx, req.SessionID)
		case errors.Is(err, repositories.ErrSessionNotFound):
			return NoResponse, ErrSessionNotFound
		case errors.Is(err, repositories.ErrSessionBusy):
			uc.logger.Info().Stringer("session", req.SessionID).Msg("Session is busy with another key press")
			return NoResponse, ErrSessionBusy
		default:
			uc.logger.Error().Err(err).Stringer("session", req.SessionID).Msg("Failed to press keys")
			return NoResponse, ErrUnableToPressKeys
		}
	}

	uc.metrics.SessionKeys.WithLabelValues(s.Machine.String()).Add(float64(len(lamps)))
	uc.logger.Debug().
		Stringer("session", s).Int("keys", len(lamps)).Int("total", s.Keys).
		Msg("Pressed keys")

	return Response{
		Lamps:   lamps,
		Session: s,
	}, nil
}

func (uc UseCase) unchanged(ctx context.Context, id uuid.UUID) (Response, error) {
	s, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return NoResponse, ErrSessionNotFound
		}
		return NoResponse, ErrUnableToPressKeys
	}
	return Response{Session: s}, nil
}
