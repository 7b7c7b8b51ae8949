// Package simdb provides a simulated-database implementation of
// store.Repository. It keeps the same mapping and identifier-assignment logic
// as the in-memory store but stands in for a real external database: it has a
// connection lifecycle, a session ID, optional per-operation latency, and
// logs every operation. Its purpose is to prove that the service layer needs
// no change when this store is swapped in.
package simdb

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/google/uuid"
)

// config holds the optional settings applied by Options.
type config struct {
	latency time.Duration
	logger  *slog.Logger
}

// Option configures a simulated-database store.
type Option func(*config)

// WithLatency sets a fixed delay applied to every operation, imitating a
// round trip to an external database.
func WithLatency(d time.Duration) Option {
	return func(c *config) {
		c.latency = d
	}
}

// WithLogger sets the logger used to record operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Store implements store.Repository backed by a simulated database session.
type Store[T store.Entity] struct {
	mu       sync.RWMutex
	entities map[int64]T
	nextID   int64
	closed   bool

	sessionID uuid.UUID
	latency   time.Duration
	logger    *slog.Logger
}

// New opens a simulated database session and returns a store bound to it.
func New[T store.Entity](opts ...Option) *Store[T] {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Store[T]{
		entities:  make(map[int64]T),
		nextID:    1,
		sessionID: uuid.New(),
		latency:   cfg.latency,
		logger:    cfg.logger,
	}
	s.logger.Debug("simulated database session opened", "session_id", s.sessionID)
	return s
}

// Close ends the simulated session. Subsequent operations return
// store.ErrStoreClosed. Close is idempotent.
func (s *Store[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		s.logger.Debug("simulated database session closed", "session_id", s.sessionID)
	}
	return nil
}

// roundTrip imitates the cost of reaching an external database: it fails if
// the session is closed, then waits out the configured latency while honoring
// context cancellation.
func (s *Store[T]) roundTrip(ctx context.Context, op string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return store.ErrStoreClosed
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.logger.DebugContext(ctx, "simulated query executed", "session_id", s.sessionID, "op", op)
	return nil
}

// Save stores the entity, assigning a fresh ID if it has none.
func (s *Store[T]) Save(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := s.roundTrip(ctx, "save"); err != nil {
		return zero, err
	}

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
func (s *Store[T]) FindByID(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := s.roundTrip(ctx, "find_by_id"); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	return e, nil
}

// FindAll retrieves all entities, ordered by ID like a primary-key scan.
func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	if err := s.roundTrip(ctx, "find_all"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]T, 0, len(s.entities))
	for _, e := range s.entities {
		list = append(list, e)
	}
	slices.SortFunc(list, func(a, b T) int {
		return cmp.Compare(a.GetID(), b.GetID())
	})
	return list, nil
}

// DeleteByID deletes an entity by its ID. Deleting an absent ID is a no-op.
func (s *Store[T]) DeleteByID(ctx context.Context, id int64) error {
	if err := s.roundTrip(ctx, "delete_by_id"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entities, id)
	return nil
}
