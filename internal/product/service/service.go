// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/gocatalog/internal/product"
	"github.com/abgdnv/gocatalog/internal/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create adds a new product to the catalog.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns store.ErrNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns all available products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// DeleteByID removes a product by its ID. Deleting an absent ID is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}

// Service implements ProductService and provides methods to manage products.
// It holds exactly one repository, supplied at construction, and has no
// awareness of which concrete store backs it.
type Service struct {
	repository store.Repository[*product.Product]
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.Repository[*product.Product]) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Create creates a new product and returns it as a ProductDto.
// Returns an error if the product cannot be created.
func (s *Service) Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Save(ctx, &product.Product{Name: dto.Name, Price: dto.Price})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns store.ErrNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	p, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(p), nil
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(item)
	}

	return productDTOs, nil
}

// DeleteByID deletes a product by its ID. Deleting an absent ID is a no-op.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repository.DeleteByID(ctx, id)
}

// toDto converts a product.Product to a ProductDto.
func toDto(p *product.Product) *ProductDto {
	return &ProductDto{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}
