package cart

import (
	"sync"

	"pygextintores/internal/kv"
)

// Manager hands out one long-lived cart store per session id, so every
// request (and tab) of a session shares the same store and slot. Stores are
// never evicted: the map and its kv watches grow with the number of distinct
// sessions seen and are released only at process exit. Eviction would need
// last-use tracking plus Release of the slot watch.
type Manager struct {
	mu     sync.Mutex
	kv     kv.Store
	stores map[string]*Store
}

func NewManager(store kv.Store) *Manager {
	return &Manager{kv: store, stores: make(map[string]*Store)}
}

func (m *Manager) ForSession(sid string) *Store {
	key := SessionKey(sid)
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[key]; ok {
		return s
	}
	s := NewStore(m.kv, key)
	m.stores[key] = s
	return s
}
