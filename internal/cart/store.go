// Package cart implements the session-scoped shopping cart: line items with
// derived totals, written through to a persistence slot on every mutation.
package cart

import (
	"encoding/json"
	"sync"

	"pygextintores/internal/domain"
	"pygextintores/internal/kv"
)

// DefaultKey is the cart's persistence slot. Handlers qualify it per session
// via SessionKey; the unqualified key is used when no session applies.
const DefaultKey = "pyg-extintores-cart"

func SessionKey(sid string) string {
	if sid == "" {
		return DefaultKey
	}
	return DefaultKey + ":" + sid
}

// Store holds one cart. Mutations always succeed: slot writes are local and
// a failed write leaves the in-memory cart authoritative. A slot that cannot
// be parsed loads as an empty cart.
type Store struct {
	mu          sync.Mutex
	kv          kv.Store
	key         string
	items       []domain.CartItem
	open        bool
	subs        map[int]func()
	nextSub     int
	cancelWatch func()
}

func NewStore(store kv.Store, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{kv: store, key: key, subs: make(map[int]func())}
	s.items = s.load()
	s.cancelWatch = store.Watch(key, s.reload)
	return s
}

func (s *Store) load() []domain.CartItem {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil || !ok {
		return nil
	}
	var items []domain.CartItem
	if json.Unmarshal(raw, &items) != nil {
		return nil
	}
	// quantity >= 1 for every stored line
	kept := items[:0]
	for _, it := range items {
		if it.Quantity >= 1 {
			kept = append(kept, it)
		}
	}
	return kept
}

// reload runs when the slot changes, including after this store's own
// writes. Other tabs of the same session land here.
func (s *Store) reload() {
	s.mu.Lock()
	s.items = s.load()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// persist must be called with the lock held.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = s.kv.Put(s.key, raw)
}

// Add inserts a line with quantity 1 on first add and increments by 1 on
// every repeat add of the same product id.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1})
	s.persist()
}

// Remove deletes the line for productID. Absent ids are a pure no-op: the
// slot is not rewritten and watchers stay quiet.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := false
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return
	}
	s.items = kept
	s.persist()
}

// UpdateQuantity clamps quantity to max(0, quantity); a clamped value of 0
// removes the line. Absent ids are a pure no-op: the slot is not rewritten
// and watchers stay quiet.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := false
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Product.ID == productID {
			matched = true
			if quantity == 0 {
				continue
			}
			it.Quantity = quantity
		}
		kept = append(kept, it)
	}
	if !matched {
		return
	}
	s.items = kept
	s.persist()
}

// Quantity returns the current quantity for productID, 0 if absent.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

// Items returns a copy of the line items.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// Clear empties the cart, e.g. after checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Count is the sum of all line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity, in whole pesos.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := 0
	for _, it := range s.items {
		sum += it.Product.Price * it.Quantity
	}
	return sum
}

// Open, Close, and IsOpen track the cart drawer's visibility. The flag is
// in-memory only; it never touches the slot.
func (s *Store) Open() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

func (s *Store) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Subscribe registers fn to run after the cart's slot changes. The returned
// func unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Release cancels the slot watch. The persisted cart survives.
func (s *Store) Release() {
	if s.cancelWatch != nil {
		s.cancelWatch()
	}
}
