package kv

import "sync"

// MemoryStore is the in-process driver used by tests.
type MemoryStore struct {
	watchHub
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	s.slots[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	s.notify(key)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.slots, key)
	s.mu.Unlock()
	s.notify(key)
	return nil
}

func (s *MemoryStore) Watch(key string, fn func()) func() { return s.watch(key, fn) }

func (s *MemoryStore) Close() error { return nil }
