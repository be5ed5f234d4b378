package cleanup

import (
	"context"
	"sync"
)

type Cleaner interface {
	Clean(ctx context.Context)
}

type Manager struct {
	mutex    sync.Mutex
	cleaners []Cleaner
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddCleaner(c Cleaner) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.cleaners = append(m.cleaners, c)
}

// Clean runs every registered cleaner concurrently and returns once all of them are done.
func (m *Manager) Clean(ctx context.Context) {
	m.mutex.Lock()
	cleaners := make([]Cleaner, len(m.cleaners))
	copy(cleaners, m.cleaners)
	m.mutex.Unlock()

	var wg sync.WaitGroup
	for _, c := range cleaners {
		wg.Go(func() {
			c.Clean(ctx)
		})
	}
	wg.Wait()
}
