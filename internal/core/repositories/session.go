package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sergeii/cipherhub/internal/core/entities/filterset"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
)

type SessionRepository interface {
	Add(ctx context.Context, s session.Session) error
	Get(ctx context.Context, id uuid.UUID) (session.Session, error)
	// Modify applies the change to the stored session while no one else can touch it.
	// The session is not saved when the change returns an error.
	Modify(ctx context.Context, id uuid.UUID, change func(*session.Session) error) (session.Session, error)
	// Remove fails with ErrSessionBusy while the session is being modified.
	Remove(ctx context.Context, id uuid.UUID) error
	// Clear skips sessions that are being modified.
	Clear(ctx context.Context, fs filterset.SessionFilterSet) (int, error)
	Count(ctx context.Context) (int, error)
}
