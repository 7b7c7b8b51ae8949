// Package memory provides an in-memory implementation of store.Repository.
package memory

import (
	"context"
	"sync"

	"github.com/abgdnv/gocatalog/internal/store"
)

// Store implements store.Repository using a map held in process memory,
// scoped to the lifetime of the Store instance.
type Store[T store.Entity] struct {
	mu       sync.RWMutex
	entities map[int64]T
	nextID   int64
}

// New creates an empty in-memory store. The first saved entity without an ID
// is assigned ID 1.
func New[T store.Entity]() *Store[T] {
	return &Store[T]{
		entities: make(map[int64]T),
		nextID:   1,
	}
}

// NewSeeded creates an in-memory store pre-populated with the given entities.
// Seeded entities keep their IDs; the counter starts above the highest one so
// fresh assignments never collide with seeded identifiers. Seeds without an
// ID are assigned fresh ones, as a Save would.
func NewSeeded[T store.Entity](entities ...T) *Store[T] {
	s := New[T]()
	var unassigned []T
	for _, e := range entities {
		if e.GetID() == 0 {
			unassigned = append(unassigned, e)
			continue
		}
		s.entities[e.GetID()] = e
		if e.GetID() >= s.nextID {
			s.nextID = e.GetID() + 1
		}
	}
	for _, e := range unassigned {
		e.SetID(s.nextID)
		s.nextID++
		s.entities[e.GetID()] = e
	}
	return s
}

// Save stores the entity, assigning a fresh ID if it has none.
func (s *Store[T]) Save(_ context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entity.GetID() == 0 {
		entity.SetID(s.nextID)
		s.nextID++
	} else if entity.GetID() >= s.nextID {
		// Keep fresh assignments ahead of caller-supplied identifiers.
		s.nextID = entity.GetID() + 1
	}
	s.entities[entity.GetID()] = entity
	return entity, nil
}

// FindByID retrieves an entity by its ID.
// Returns store.ErrNotFound if no entity exists with the given ID.
func (s *Store[T]) FindByID(_ context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return e, nil
}

// FindAll retrieves all entities. Map iteration order applies.
func (s *Store[T]) FindAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]T, 0, len(s.entities))
	for _, e := range s.entities {
		list = append(list, e)
	}
	return list, nil
}

// DeleteByID deletes an entity by its ID. Deleting an absent ID is a no-op.
func (s *Store[T]) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entities, id)
	return nil
}
