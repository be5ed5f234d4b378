package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/cmd/cipherhub/application"
	"github.com/sergeii/cipherhub/cmd/cipherhub/commander"
	"github.com/sergeii/cipherhub/cmd/cipherhub/components/api"
	"github.com/sergeii/cipherhub/cmd/cipherhub/components/cleaner"
	"github.com/sergeii/cipherhub/cmd/cipherhub/components/exporter"
	"github.com/sergeii/cipherhub/cmd/cipherhub/components/observer"
	"github.com/sergeii/cipherhub/cmd/cipherhub/logging"
	"github.com/sergeii/cipherhub/cmd/cipherhub/persistence"
	"github.com/sergeii/cipherhub/internal/settings"
)

// @title       Cipher Hub API
// @version     1.0
// @description Rotor and stepping switch cipher machines over HTTP.
// @BasePath    /api
func main() {
	cli := commander.CLI{}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&cleaner.CLI{},
		&observer.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("cipherhub"),
		kong.Description("Cipher Hub"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		persistence.Module(persistence.Config{
			Storage:  cli.Globals.Storage,
			RedisURL: cli.Globals.RedisURL,
		}),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			SessionTTL:     cli.Globals.SessionTTL,
			SessionLockTTL: cli.Globals.SessionLockTTL,
			TapeLength:     cli.Globals.SessionTape,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
