package sessionobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/metrics"
)

type SessionObserver struct {
	sessionRepo repositories.SessionRepository
	logger      *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	sessionRepo repositories.SessionRepository,
	logger *zerolog.Logger,
) SessionObserver {
	observer := SessionObserver{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o SessionObserver) Observe(ctx context.Context, m *metrics.Collector) {
	count, err := o.sessionRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe session count")
		return
	}
	m.SessionRepositorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed session count")
}
