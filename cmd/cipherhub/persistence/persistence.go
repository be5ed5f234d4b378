package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/persistence/memory"
	"github.com/sergeii/cipherhub/internal/persistence/redis/redislock"
	"github.com/sergeii/cipherhub/internal/persistence/redis/repositories/sessions"
)

const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Storage  string
	RedisURL string
}

type Repositories struct {
	fx.Out

	Sessions repositories.SessionRepository
}

func Provide(lc fx.Lifecycle, cfg Config, logger *zerolog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
				logger.Error().Err(pingErr).Str("addr", opts.Addr).Msg("Unable to reach redis")
				return pingErr
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}

func provideRedisRepositories(sessionRepo *sessions.Repository) Repositories {
	return Repositories{
		Sessions: sessionRepo,
	}
}

func provideMemoryRepositories() Repositories {
	repos := memory.New()
	return Repositories{
		Sessions: repos.Sessions,
	}
}

// RedisModule expects a *redis.Client to be provided elsewhere.
var RedisModule = fx.Module("persistence",
	fx.Provide(redislock.NewManager),
	fx.Provide(sessions.New),
	fx.Provide(provideRedisRepositories),
)

var MemoryModule = fx.Module("persistence",
	fx.Provide(provideMemoryRepositories),
)

func Module(cfg Config) fx.Option {
	if cfg.Storage == StorageMemory {
		return MemoryModule
	}
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(Provide),
		RedisModule,
	)
}
