package application

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/cmd/cipherhub/components/exporter"
	"github.com/sergeii/cipherhub/cmd/cipherhub/container"
	"github.com/sergeii/cipherhub/cmd/cipherhub/logging"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/internal/validation"
)

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

// Module expects session repositories and settings to be provided by the caller.
var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(metrics.New),
	container.Module,
)
