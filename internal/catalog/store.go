package catalog

import (
	"encoding/json"

	"github.com/asaskevich/EventBus"

	"pygextintores/internal/domain"
	"pygextintores/internal/kv"
)

const (
	// StorageKey is the persistence slot holding the product list.
	StorageKey = "pyg_products"
	// ProductsEvent is published on the bus after every catalog mutation.
	ProductsEvent = "pyg-products-change"
)

// Store owns the authoritative product list. All reads hydrate; all writes
// hydrate, persist the full list, and broadcast a change.
type Store struct {
	kv  kv.Store
	bus EventBus.Bus
}

func NewStore(store kv.Store, bus EventBus.Bus) *Store {
	if bus == nil {
		bus = EventBus.New()
	}
	return &Store{kv: store, bus: bus}
}

// Products returns the hydrated catalog. A missing, malformed, or empty slot
// silently falls back to the bundled seed catalog.
func (s *Store) Products() []domain.Product {
	if raw, ok, err := s.kv.Get(StorageKey); err == nil && ok {
		var list []domain.Product
		if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
			for i := range list {
				list[i] = Hydrate(list[i])
			}
			return list
		}
	}
	seed := Seed()
	for i := range seed {
		seed[i] = Hydrate(seed[i])
	}
	return seed
}

func (s *Store) FindByID(id string) (domain.Product, bool) {
	for _, p := range s.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FindBySlug resolves a product by its URL slug, falling back to id so old
// links keep working.
func (s *Store) FindBySlug(slug string) (domain.Product, bool) {
	for _, p := range s.Products() {
		if p.Slug == slug || p.ID == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Store) ByCategory(c domain.Category) []domain.Product {
	var out []domain.Product
	for _, p := range s.Products() {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// SetProducts replaces the whole persisted list.
func (s *Store) SetProducts(list []domain.Product) error {
	payload := make([]domain.Product, len(list))
	for i, p := range list {
		payload[i] = Hydrate(p)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := s.kv.Put(StorageKey, raw); err != nil {
		return err
	}
	s.bus.Publish(ProductsEvent)
	return nil
}

// Upsert replaces the product with a matching id in place, or appends.
func (s *Store) Upsert(p domain.Product) error {
	current := s.Products()
	for i := range current {
		if current[i].ID == p.ID {
			current[i] = p
			return s.SetProducts(current)
		}
	}
	return s.SetProducts(append(current, p))
}

// Delete removes the matching product if present; it persists and notifies
// regardless.
func (s *Store) Delete(id string) error {
	current := s.Products()
	next := make([]domain.Product, 0, len(current))
	for _, p := range current {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return s.SetProducts(next)
}

// Subscribe registers fn on both change channels: the store event published
// after each mutation here, and the slot watch that also fires on writes
// from other handles of the same store file. The returned func unsubscribes
// from both.
func (s *Store) Subscribe(fn func()) func() {
	handler := func() { fn() }
	_ = s.bus.Subscribe(ProductsEvent, handler)
	cancelWatch := s.kv.Watch(StorageKey, fn)
	return func() {
		_ = s.bus.Unsubscribe(ProductsEvent, handler)
		cancelWatch()
	}
}
