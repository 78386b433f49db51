// Package kv provides the named-slot key-value store backing the catalog and
// cart stores. A slot holds one JSON document; writes replace the whole slot
// and the last writer wins.
package kv

import (
	"fmt"
	"sync"
)

type Store interface {
	// Get returns the slot contents and whether the slot exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	// Watch registers fn to run after any successful Put or Delete on key,
	// including writes issued through the same handle. Callbacks run on
	// their own goroutine with no ordering guarantee; the returned func
	// cancels the registration.
	Watch(key string, fn func()) func()
	Close() error
}

// Open selects a driver by name. The memory driver is for tests.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "bolt", "":
		return OpenBolt(path)
	case "sqlite":
		return OpenSQLite(path)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kv: unknown store driver %q", driver)
	}
}

// watchHub fans slot-change notifications out to registered watchers. It is
// embedded by every driver.
type watchHub struct {
	mu       sync.Mutex
	nextID   int
	watchers map[string]map[int]func()
}

func (h *watchHub) watch(key string, fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers == nil {
		h.watchers = make(map[string]map[int]func())
	}
	if h.watchers[key] == nil {
		h.watchers[key] = make(map[int]func())
	}
	id := h.nextID
	h.nextID++
	h.watchers[key][id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.watchers[key], id)
	}
}

func (h *watchHub) notify(key string) {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.watchers[key]))
	for _, fn := range h.watchers[key] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	if len(fns) == 0 {
		return
	}
	go func() {
		for _, fn := range fns {
			fn()
		}
	}()
}
