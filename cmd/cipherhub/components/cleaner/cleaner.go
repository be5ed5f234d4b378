package cleaner

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/cmd/cipherhub/application"
	"github.com/sergeii/cipherhub/cmd/cipherhub/commander"
	"github.com/sergeii/cipherhub/cmd/cipherhub/ticking"
	"github.com/sergeii/cipherhub/internal/cleanup"
	"github.com/sergeii/cipherhub/internal/cleanup/cleaners/sessioncleaner"
	"github.com/sergeii/cipherhub/internal/settings"
)

type Config struct {
	CleanInterval time.Duration
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	manager *cleanup.Manager,
	logger *zerolog.Logger,
) *Component {
	ticking.Bind(lc, clock, cfg.CleanInterval, "cleaner", logger, manager.Clean)
	return &Component{}
}

type Opts struct {
	fx.Out

	SessionCleanerOpts sessioncleaner.Opts
}

// Idle sessions live for as long as the session ttl says.
func provideCleanerConfigs(settings settings.Settings) Opts {
	return Opts{
		SessionCleanerOpts: sessioncleaner.Opts{
			Retention: settings.SessionTTL,
		},
	}
}

type command struct {
	CleanInterval time.Duration `default:"10m" help:"Sets how often idle sessions are cleaned up"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				CleanInterval: c.CleanInterval,
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
	Cleaner command `cmd:"" help:"Start cleaner"`
}

var Module = fx.Module("cleaner",
	fx.Provide(cleanup.NewManager),
	fx.Provide(fx.Private, provideCleanerConfigs),
	fx.Invoke(sessioncleaner.New),
	fx.Provide(New),
)
