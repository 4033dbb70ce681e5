package storage

import (
	"context"
	"sync"

	"github.com/alexanderramin/learnhub/internal/config"
)

// MemoryAdapter keeps the payload in process memory. Progress does not
// survive a restart; it backs throwaway sessions and tests.
type MemoryAdapter struct {
	mu    sync.Mutex
	data  []byte
	found bool
	saves int

	// LoadErr and SaveErr, when set, are returned instead of touching data.
	LoadErr error
	SaveErr error

	// Block, when non-nil, holds every Save until it is closed or the
	// save context ends.
	Block chan struct{}
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (a *MemoryAdapter) Load(context.Context) ([]byte, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.LoadErr != nil {
		return nil, false, a.LoadErr
	}
	if !a.found {
		return nil, false, nil
	}
	return append([]byte(nil), a.data...), true, nil
}

func (a *MemoryAdapter) Save(ctx context.Context, data []byte) error {
	if a.Block != nil {
		select {
		case <-a.Block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.data = append([]byte(nil), data...)
	a.found = true
	a.saves++
	return nil
}

// Saves reports how many successful writes the adapter has accepted.
func (a *MemoryAdapter) Saves() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saves
}

// Bytes returns a copy of the stored payload.
func (a *MemoryAdapter) Bytes() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]byte(nil), a.data...)
}

func (a *MemoryAdapter) Describe(context.Context) (Info, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Info{Backend: config.BackendMemory, Location: "process memory", Found: a.found, SizeBytes: len(a.data)}, nil
}

func (a *MemoryAdapter) Close() error { return nil }
