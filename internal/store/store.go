// Package store defines the storage abstraction shared by all catalog store
// implementations. It abstracts the underlying data store, allowing for
// different implementations (e.g., in-memory, simulated database) to be
// swapped without touching the service layer.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no entity exists with the requested ID.
var ErrNotFound = errors.New("entity not found")

// ErrStoreClosed is returned by stores with a connection lifecycle when an
// operation is attempted after Close.
var ErrStoreClosed = errors.New("store is closed")

// Entity is the minimal contract a record must satisfy to be managed by a
// Repository. An ID of zero means the entity has not been assigned an
// identifier yet; the store assigns one on first Save and never reassigns it.
// Implementations use pointer receivers so SetID is visible to the caller.
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// Repository is an interface for entity storage operations over a single
// entity type T.
type Repository[T Entity] interface {
	// Save persists a new or updated entity. If the entity has no ID, the
	// store assigns a fresh, previously unused one and returns the entity
	// with it set. If the ID is already present, the entity overwrites any
	// existing entity with the same ID; last write wins. The store retains
	// the entity it is given; callers must not mutate it after Save and
	// must go through Save to change stored state.
	Save(ctx context.Context, entity T) (T, error)

	// FindByID retrieves a single entity by its unique identifier.
	// Returns ErrNotFound if no entity exists with the given ID.
	FindByID(ctx context.Context, id int64) (T, error)

	// FindAll returns all retained entities. Order is implementation-defined.
	// Returns an empty slice if no entities exist.
	FindAll(ctx context.Context) ([]T, error)

	// DeleteByID removes the entity with the given ID if present. Deleting
	// an absent ID is a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error
}
