package serving

import (
	"context"
	"net"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/pkg/http/httpserver"
)

type Server interface {
	ListenAndServe() error
	Stop(context.Context) error
}

// Bind ties the server to the app lifecycle.
// The app start is blocked until ready is closed, and
// the whole app is shut down should the server exit on its own.
func Bind(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	svr Server,
	ready <-chan struct{},
	name string,
	logger *zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if serveErr := svr.ListenAndServe(); serveErr != nil {
					logger.Warn().Err(serveErr).Msgf("%s server exited prematurely", name)
					if shutErr := shutdowner.Shutdown(); shutErr != nil {
						logger.Error().Err(shutErr).Msgf("Failed to handle premature %s server shutdown", name)
					}
				}
			}()
			<-ready
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if stopErr := svr.Stop(stopCtx); stopErr != nil {
				logger.Error().Err(stopErr).Msgf("Failed to stop %s server gracefully", name)
				return stopErr
			}
			logger.Info().Msgf("%s server stopped", name)
			return nil
		},
	})
}

// ReadySignal returns an httpserver option that closes ready once the server listens.
func ReadySignal(ready chan struct{}, name string, logger *zerolog.Logger) httpserver.Option {
	return httpserver.WithReadySignal(func(addr net.Addr) {
		logger.Info().Stringer("addr", addr).Msgf("%s server is ready to accept connections", name)
		close(ready)
	})
}
