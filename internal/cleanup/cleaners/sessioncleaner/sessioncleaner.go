package sessioncleaner

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/cleanup"
	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/filterset"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/metrics"
)

const kind = "sessions"

type Opts struct {
	Retention time.Duration
}

// SessionCleaner drops interactive sessions nobody has typed on for a while.
type SessionCleaner struct {
	opts        Opts
	sessionRepo repositories.SessionRepository
	clock       clockwork.Clock
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	manager *cleanup.Manager,
	opts Opts,
	sessionRepo repositories.SessionRepository,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) SessionCleaner {
	cleaner := SessionCleaner{
		opts:        opts,
		sessionRepo: sessionRepo,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
	manager.AddCleaner(&cleaner)
	return cleaner
}

func (c SessionCleaner) Clean(ctx context.Context) {
	cleanUntil := c.clock.Now().Add(-c.opts.Retention)

	c.logger.Info().Stringer("until", cleanUntil).Msg("Starting to clean idle sessions")

	removed, errors := 0, 0
	for _, machine := range []cipher.Machine{cipher.Enigma, cipher.Purple} {
		fs := filterset.NewSessionFilterSet().UpdatedBefore(cleanUntil).WithMachine(machine)
		count, err := c.sessionRepo.Clear(ctx, fs)
		if err != nil {
			c.logger.Error().
				Err(err).
				Stringer("until", cleanUntil).Stringer("machine", machine).
				Msg("Failed to clean idle sessions")
			errors++
			continue
		}
		c.logger.Debug().Stringer("machine", machine).Int("removed", count).Msg("Cleaned idle sessions")
		removed += count
	}

	c.metrics.CleanerRemovals.WithLabelValues(kind).Add(float64(removed))
	c.metrics.CleanerErrors.WithLabelValues(kind).Add(float64(errors))
	c.logger.Info().
		Stringer("until", cleanUntil).
		Int("removed", removed).Int("errors", errors).
		Msg("Finished cleaning idle sessions")
}
