package sessions

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sergeii/cipherhub/internal/core/entities/filterset"
	"github.com/sergeii/cipherhub/internal/core/entities/session"
	"github.com/sergeii/cipherhub/internal/core/repositories"
)

type Repository struct {
	items map[uuid.UUID]session.Session
	mutex sync.RWMutex
}

func New() *Repository {
	return &Repository{
		items: make(map[uuid.UUID]session.Session),
	}
}

func (r *Repository) Add(_ context.Context, s session.Session) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.items[s.ID]; exists {
		return repositories.ErrSessionExists
	}
	r.items[s.ID] = s
	return nil
}

func (r *Repository) Get(_ context.Context, id uuid.UUID) (session.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	s, exists := r.items[id]
	if !exists {
		return session.Blank, repositories.ErrSessionNotFound
	}
	return s, nil
}

func (r *Repository) Modify(
	_ context.Context,
	id uuid.UUID,
	change func(*session.Session) error,
) (session.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	s, exists := r.items[id]
	if !exists {
		return session.Blank, repositories.ErrSessionNotFound
	}
	if err := change(&s); err != nil {
		return session.Blank, err
	}
	r.items[id] = s
	return s, nil
}

func (r *Repository) Remove(_ context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.items, id)
	return nil
}

func (r *Repository) Clear(_ context.Context, fs filterset.SessionFilterSet) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	updatedBefore, byUpdated := fs.GetUpdatedBefore()
	machine, byMachine := fs.GetMachine()
	removed := 0
	for id, s := range r.items {
		if byUpdated && !s.UpdatedAt.Before(updatedBefore) {
			continue
		}
		if byMachine && s.Machine != machine {
			continue
		}
		delete(r.items, id)
		removed++
	}
	return removed, nil
}

func (r *Repository) Count(_ context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.items), nil
}
