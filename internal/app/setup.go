// Package app contains the application wiring for the catalog demo. It is
// the composition root: concrete stores are chosen here and injected into
// the service, which only ever sees the repository abstraction.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/internal/product"
	"github.com/abgdnv/gocatalog/internal/product/service"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/store/memory"
	"github.com/abgdnv/gocatalog/internal/store/simdb"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Products *service.Service
	Logger   *slog.Logger
	// CloseStore releases the underlying store, if it has a lifecycle.
	CloseStore func() error
}

// NewStore constructs the store implementation selected by the configuration.
// The returned closer is a no-op for stores without a lifecycle.
func NewStore(cfg *config.Config, logger *slog.Logger) (store.Repository[*product.Product], func() error, error) {
	switch cfg.Store.Backend {
	case "memory":
		return memory.New[*product.Product](), func() error { return nil }, nil
	case "simdb":
		db := simdb.New[*product.Product](
			simdb.WithLatency(cfg.SimDB.Latency),
			simdb.WithLogger(logger),
		)
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

// SetupDependencies wires the configured store into a product service.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	repo, closeStore, err := NewStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Dependencies{
		Products:   service.NewService(repo),
		Logger:     logger,
		CloseStore: closeStore,
	}, nil
}

// RunDemo performs the fixed demonstration sequence: create and retrieve a
// product through a service backed by the in-memory store, then create a
// second product through the identical service code backed by the simulated
// database. The service layer is untouched by the swap.
func RunDemo(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	// Part one: service over the in-memory store.
	products := service.NewService(memory.New[*product.Product]())

	laptop, err := products.Create(ctx, service.ProductCreateDto{Name: "Laptop", Price: 1200.0})
	if err != nil {
		return fmt.Errorf("create in memory store: %w", err)
	}
	fmt.Fprintf(out, "memory store: created %+v\n", *laptop)

	found, err := products.FindByID(ctx, laptop.ID)
	if err != nil {
		return fmt.Errorf("find in memory store: %w", err)
	}
	fmt.Fprintf(out, "memory store: found   %+v\n", *found)

	// Part two: the same service code over the simulated database.
	db := simdb.New[*product.Product](
		simdb.WithLatency(cfg.SimDB.Latency),
		simdb.WithLogger(logger),
	)
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Warn("failed to close simulated database", "error", cerr)
		}
	}()
	products = service.NewService(db)

	mouse, err := products.Create(ctx, service.ProductCreateDto{Name: "Mouse", Price: 25.0})
	if err != nil {
		return fmt.Errorf("create in simulated database: %w", err)
	}
	fmt.Fprintf(out, "simulated database: created %+v\n", *mouse)

	return nil
}

// RunCheck exercises the repository contract through the service against the
// backend selected by the configuration. It is the swappability proof: the
// sequence below is backend-agnostic and must behave identically for every
// store implementation.
func RunCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	deps, err := SetupDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := deps.CloseStore(); cerr != nil {
			logger.Warn("failed to close store", "error", cerr)
		}
	}()
	products := deps.Products

	first, err := products.Create(ctx, service.ProductCreateDto{Name: "Keyboard", Price: 49.5})
	if err != nil {
		return fmt.Errorf("create first product: %w", err)
	}
	second, err := products.Create(ctx, service.ProductCreateDto{Name: "Monitor", Price: 310.0})
	if err != nil {
		return fmt.Errorf("create second product: %w", err)
	}
	if first.ID == second.ID {
		return fmt.Errorf("store assigned duplicate ID %d", first.ID)
	}

	got, err := products.FindByID(ctx, first.ID)
	if err != nil {
		return fmt.Errorf("find first product: %w", err)
	}
	if got.Name != first.Name || got.Price != first.Price {
		return fmt.Errorf("retrieved product %+v does not match saved %+v", *got, *first)
	}

	if err := products.DeleteByID(ctx, first.ID); err != nil {
		return fmt.Errorf("delete first product: %w", err)
	}
	// Idempotent: a second delete of the same ID is a no-op.
	if err := products.DeleteByID(ctx, first.ID); err != nil {
		return fmt.Errorf("repeat delete of first product: %w", err)
	}

	remaining, err := products.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(remaining) != 1 || remaining[0].ID != second.ID {
		return fmt.Errorf("expected only product %d to remain, got %v", second.ID, remaining)
	}

	fmt.Fprintf(out, "check passed for backend %q\n", cfg.Store.Backend)
	return nil
}
