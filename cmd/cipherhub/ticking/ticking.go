package ticking

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func run(
	ctx context.Context,
	stopped chan struct{},
	clock clockwork.Clock,
	interval time.Duration,
	tick func(context.Context),
) {
	defer close(stopped)

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			tick(ctx)
		}
	}
}

// Bind calls tick every interval for as long as the app is running.
// Stopping the app waits for the tick in progress to finish.
func Bind(
	lc fx.Lifecycle,
	clock clockwork.Clock,
	interval time.Duration,
	name string,
	logger *zerolog.Logger,
	tick func(context.Context),
) {
	stopped := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info().Dur("interval", interval).Msgf("Starting %s", name)
			go run(ctx, stopped, clock, interval, tick) // nolint: contextcheck
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-stopped
			logger.Info().Msgf("%s stopped", name)
			return nil
		},
	})
}
