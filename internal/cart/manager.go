package cart

import (
	"context"
	"sync"

	"craft-store/internal/storage"
)

const keyPrefix = "cart:"

// Manager hands out the cart engine for a given client id. Each
// browser gets one cart, keyed the way the original storefront keyed
// its localStorage entry. Engines are cached per client so every
// request for the same client shares one instance — the engine's
// mutex can only serialize overlapping writers if they hold the same
// engine.
type Manager struct {
	kv      storage.KV
	catalog PriceLookup

	mu      sync.Mutex
	engines map[string]*Engine
}

// NewManager creates a manager over the given storage adapter
func NewManager(kv storage.KV, prices PriceLookup) *Manager {
	return &Manager{
		kv:      kv,
		catalog: prices,
		engines: make(map[string]*Engine),
	}
}

// Load returns the cart engine for clientID, rehydrating it from
// storage on first use and the cached instance afterwards.
func (m *Manager) Load(ctx context.Context, clientID string) *Engine {
	key := keyPrefix + clientID

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.engines[key]; ok {
		return e
	}
	e := NewEngine(ctx, m.kv, key, m.catalog)
	m.engines[key] = e
	return e
}
