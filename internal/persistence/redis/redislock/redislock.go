package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "locks:"

var ErrNotAcquired = errors.New("lock: not acquired")

// Manager hands out short-lived exclusive locks backed by redis keys.
// Each lock holder is identified by a random token,
// so a holder can never release a lock taken over by someone else.
type Manager struct {
	client *redis.Client
	logger *zerolog.Logger
}

func NewManager(client *redis.Client, logger *zerolog.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger,
	}
}

// Guard runs op while holding the lock with the given name.
// The lock key is watched for the whole duration of op,
// so any transaction op queues on tx fails once the lock expires.
// ErrNotAcquired is returned when someone else holds the lock.
func (m *Manager) Guard(ctx context.Context, name string, ttl time.Duration, op func(tx *redis.Tx) error) error {
	key := keyPrefix + name
	token := uuid.NewString()

	acquired, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return fmt.Errorf("guard: take lock %s: %w", name, err)
	}
	if !acquired {
		return ErrNotAcquired
	}
	defer m.release(ctx, key, token)

	err = m.client.Watch(ctx, func(tx *redis.Tx) error {
		// the lock could have expired between SETNX and WATCH
		owner, getErr := tx.Get(ctx, key).Result()
		if getErr != nil {
			if errors.Is(getErr, redis.Nil) {
				return ErrNotAcquired
			}
			return fmt.Errorf("guard: check lock %s: %w", name, getErr)
		}
		if owner != token {
			return ErrNotAcquired
		}
		return op(tx)
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr), errors.Is(err, ErrNotAcquired):
		return ErrNotAcquired
	default:
		return err
	}
}

func (m *Manager) release(ctx context.Context, key, token string) {
	err := m.client.Watch(ctx, func(tx *redis.Tx) error {
		owner, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		if owner != token {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
	if err == nil {
		return
	}
	// losing the lock while releasing it is exactly what we wanted anyway
	if errors.Is(err, redis.TxFailedErr) {
		m.logger.Debug().Str("key", key).Msg("Lock ownership lost while releasing")
		return
	}
	m.logger.Error().Err(err).Str("key", key).Msg("Failed to release lock")
}
