package repository

import (
	"context"

	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrStockUnavailable is returned when a conditional stock decrement matches no row.
	ErrStockUnavailable = errors.New("stock unavailable")
)

// ProductRepository is the catalog lookup and stock ledger.
type ProductRepository interface {
	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves every listed product that exists, keyed by ID.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// DecrementStock atomically removes quantity units if at least that many
	// are in stock, otherwise returns ErrStockUnavailable.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock atomically adds quantity units.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
