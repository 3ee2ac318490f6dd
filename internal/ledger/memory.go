package ledger

import (
	"context"
	"sync"
)

// MemoryStore keeps the ledger in process memory. Useful for tests and
// for sessions that should not persist.
type MemoryStore struct {
	mu       sync.RWMutex
	defeated map[string]bool
	saves    int
}

// NewMemoryStore creates a store pre-populated with the given entries.
func NewMemoryStore(initial map[string]bool) *MemoryStore {
	m := &MemoryStore{defeated: make(map[string]bool, len(initial))}
	for k, v := range initial {
		m.defeated[k] = v
	}
	return m
}

// Load returns a copy of the recorded entries.
func (m *MemoryStore) Load(_ context.Context) (map[string]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.defeated))
	for k, v := range m.defeated {
		out[k] = v
	}
	return out, nil
}

// SaveDefeated records name as defeated.
func (m *MemoryStore) SaveDefeated(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defeated[name] = true
	m.saves++
	return nil
}

// Saves returns how many times SaveDefeated has been called.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
