package observer

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/cmd/cipherhub/application"
	"github.com/sergeii/cipherhub/cmd/cipherhub/commander"
	"github.com/sergeii/cipherhub/cmd/cipherhub/ticking"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/internal/metrics/observers/sessionobserver"
)

type Config struct {
	ObserveInterval time.Duration
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *Component {
	ticking.Bind(lc, clock, cfg.ObserveInterval, "observer", logger, collector.Observe)
	return &Component{}
}

type command struct {
	MetricObserveInterval time.Duration `default:"5s" help:"Sets how often metrics are collected"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				ObserveInterval: c.MetricObserveInterval,
			}),
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Observer command `cmd:"" help:"Start observer"`
}

var Module = fx.Module("observer",
	fx.Invoke(sessionobserver.New),
	fx.Provide(New),
)
