package session

import (
	"context"
	"sync"

	"craft-store/internal/storage"
)

const keyPrefix = "session:"

// Manager hands out the session store for a given client id. Stores
// are cached per client so overlapping requests share one instance and
// its mutex actually serializes their read-modify-writes.
type Manager struct {
	kv storage.KV

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a manager over the given storage adapter
func NewManager(kv storage.KV) *Manager {
	return &Manager{
		kv:     kv,
		stores: make(map[string]*Store),
	}
}

// Load returns the session store for clientID, rehydrating it from
// storage on first use and the cached instance afterwards.
func (m *Manager) Load(ctx context.Context, clientID string) *Store {
	key := keyPrefix + clientID

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[key]; ok {
		return s
	}
	s := NewStore(ctx, m.kv, key)
	m.stores[key] = s
	return s
}
