package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/core/entities/filterset"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
	"github.com/sergeii/cipherhub/internal/persistence/redis/redislock"
	"github.com/sergeii/cipherhub/internal/settings"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

const (
	itemsKey   = "sessions:items"
	updatesKey = "sessions:updated"
	lockPrefix = "sessions:"
)

const defaultLockTTL = time.Second * 5

type storedSession struct {
	ID        uuid.UUID        `json:"id"`
	Machine   string           `json:"machine"`
	Direction string           `json:"direction"`
	Enigma    *enigma.Settings `json:"enigma,omitempty"`
	Purple    *purple.State    `json:"purple,omitempty"`
	Rotors    [3]int           `json:"rotors"`
	Switches  purple.State     `json:"switches"`
	Keys      int              `json:"keys"`
	Tape      string           `json:"tape"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

type Repository struct {
	client  *redis.Client
	locks   *redislock.Manager
	lockTTL time.Duration
}

func New(
	client *redis.Client,
	locks *redislock.Manager,
	cfg settings.Settings,
) *Repository {
	lockTTL := cfg.SessionLockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &Repository{
		client:  client,
		locks:   locks,
		lockTTL: lockTTL,
	}
}

func (r *Repository) Add(ctx context.Context, s session.Session) error {
	item, err := encodeSession(s)
	if err != nil {
		return err
	}
	var added *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.HSetNX(ctx, itemsKey, s.ID.String(), item)
		pipe.ZAddNX(ctx, updatesKey, redis.Z{
			Score:  float64(s.UpdatedAt.UnixNano()),
			Member: s.ID.String(),
		})
		return nil
	})
	if err != nil {
		// an item missing from the index would never be cleaned up
		if added != nil && added.Val() {
			if delErr := r.client.HDel(ctx, itemsKey, s.ID.String()).Err(); delErr != nil {
				return fmt.Errorf("failed to add session: %w (rollback: %w)", err, delErr)
			}
		}
		return fmt.Errorf("failed to add session: %w", err)
	}
	if !added.Val() {
		return repositories.ErrSessionExists
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (session.Session, error) {
	item, err := r.client.HGet(ctx, itemsKey, id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Blank, repositories.ErrSessionNotFound
		}
		return session.Blank, fmt.Errorf("failed to retrieve session by id: %w", err)
	}
	return decodeSession(item)
}

func (r *Repository) Modify(
	ctx context.Context,
	id uuid.UUID,
	change func(*session.Session) error,
) (session.Session, error) {
	var modified session.Session
	err := r.locks.Guard(ctx, lockPrefix+id.String(), r.lockTTL, func(tx *redis.Tx) error {
		item, err := tx.HGet(ctx, itemsKey, id.String()).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return repositories.ErrSessionNotFound
			}
			return fmt.Errorf("failed to retrieve session for update: %w", err)
		}

		s, err := decodeSession(item)
		if err != nil {
			return err
		}
		if err = change(&s); err != nil {
			return err
		}

		updated, err := encodeSession(s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, itemsKey, id.String(), updated)
			pipe.ZAdd(ctx, updatesKey, redis.Z{
				Score:  float64(s.UpdatedAt.UnixNano()),
				Member: id.String(),
			})
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}

		modified = s
		return nil
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotAcquired) {
			return session.Blank, repositories.ErrSessionBusy
		}
		return session.Blank, err
	}
	return modified, nil
}

func (r *Repository) Remove(ctx context.Context, id uuid.UUID) error {
	err := r.locks.Guard(ctx, lockPrefix+id.String(), r.lockTTL, func(tx *redis.Tx) error {
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, itemsKey, id.String())
			pipe.ZRem(ctx, updatesKey, id.String())
			return nil
		})
		return err
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotAcquired) {
			return repositories.ErrSessionBusy
		}
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, fs filterset.SessionFilterSet) (int, error) {
	stop := "+inf"
	updatedBefore, byUpdated := fs.GetUpdatedBefore()
	if byUpdated {
		// exclusive, sessions updated exactly at the bound are kept
		stop = "(" + strconv.FormatInt(updatedBefore.UnixNano(), 10)
	}

	keys, err := r.client.ZRangeArgs(
		ctx,
		redis.ZRangeArgs{
			Key:     updatesKey,
			ByScore: true,
			Start:   "-inf",
			Stop:    stop,
		},
	).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch sessions to remove: %w", err)
	}

	if machine, ok := fs.GetMachine(); ok {
		keys, err = r.filterByMachine(ctx, keys, machine)
		if err != nil {
			return 0, err
		}
	}

	removed := 0
	for _, key := range keys {
		ok, clearErr := r.clearOne(ctx, key, updatedBefore, byUpdated)
		if clearErr != nil {
			return removed, clearErr
		}
		if ok {
			removed++
		}
	}

	return removed, nil
}

// clearOne removes the session unless it is being modified
// or has been updated since the candidates were collected.
func (r *Repository) clearOne(ctx context.Context, key string, updatedBefore time.Time, byUpdated bool) (bool, error) {
	var removed bool
	err := r.locks.Guard(ctx, lockPrefix+key, r.lockTTL, func(tx *redis.Tx) error {
		score, err := tx.ZScore(ctx, updatesKey, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return fmt.Errorf("failed to check session %s: %w", key, err)
		}
		if byUpdated && score >= float64(updatedBefore.UnixNano()) {
			return nil
		}
		var affected *redis.IntCmd
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZRem(ctx, updatesKey, key)
			affected = pipe.HDel(ctx, itemsKey, key)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to remove session %s: %w", key, err)
		}
		removed = affected.Val() > 0
		return nil
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotAcquired) {
			return false, nil
		}
		return false, err
	}
	return removed, nil
}

func (r *Repository) filterByMachine(ctx context.Context, keys []string, machine cipher.Machine) ([]string, error) {
	if len(keys) == 0 {
		return keys, nil
	}
	items, err := r.client.HMGet(ctx, itemsKey, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions to filter: %w", err)
	}
	filtered := make([]string, 0, len(keys))
	for i, item := range items {
		// the session was removed in the meantime
		if item == nil {
			continue
		}
		s, decodeErr := decodeSession(item)
		if decodeErr != nil {
			return nil, decodeErr
		}
		if s.Machine == machine {
			filtered = append(filtered, keys[i])
		}
	}
	return filtered, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.HLen(ctx, itemsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return int(count), nil
}

func encodeSession(s session.Session) ([]byte, error) {
	encoded, err := json.Marshal(storedSession{
		ID:        s.ID,
		Machine:   s.Machine.String(),
		Direction: s.Direction.String(),
		Enigma:    s.Enigma,
		Purple:    s.Purple,
		Rotors:    s.Rotors,
		Switches:  s.Switches,
		Keys:      s.Keys,
		Tape:      s.Tape,
		CreatedAt: s.CreatedAt.UnixNano(),
		UpdatedAt: s.UpdatedAt.UnixNano(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session item: %w", err)
	}
	return encoded, nil
}

func decodeSession(val any) (session.Session, error) {
	var decoded storedSession
	encoded, ok := val.(string)
	if !ok {
		return session.Blank, fmt.Errorf("unexpected type %T, %v", val, val)
	}
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		return session.Blank, fmt.Errorf("failed to unmarshal session item: %w", err)
	}
	machine, err := cipher.ParseMachine(decoded.Machine)
	if err != nil {
		return session.Blank, fmt.Errorf("failed to decode session item: %w", err)
	}
	direction, err := cipher.ParseDirection(decoded.Direction)
	if err != nil {
		return session.Blank, fmt.Errorf("failed to decode session item: %w", err)
	}
	return session.Session{
		ID:        decoded.ID,
		Machine:   machine,
		Direction: direction,
		Enigma:    decoded.Enigma,
		Purple:    decoded.Purple,
		Rotors:    decoded.Rotors,
		Switches:  decoded.Switches,
		Keys:      decoded.Keys,
		Tape:      decoded.Tape,
		CreatedAt: time.Unix(0, decoded.CreatedAt).UTC(),
		UpdatedAt: time.Unix(0, decoded.UpdatedAt).UTC(),
	}, nil
}
