// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application
// layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"webmarket/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product
// is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product by its identifier.
	FindByID(ctx context.Context, id int) (*entity.Product, error)

	// FindAll retrieves every product, newest first.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// Create persists a new product with its caller-assigned ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its identifier.
	Delete(ctx context.Context, id int) error
}
