package repository

import (
	"context"

	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionConflict is returned when the stored order no longer has the expected version.
	ErrOrderVersionConflict = errors.New("order version conflict")
)

// OrderRepository persists orders together with their items, change history and coupons.
type OrderRepository interface {
	// Create persists a new order. order.Version is stored as given.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with all of its children.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCustomer retrieves a page of the orders placed by customerID, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// List retrieves orders of every customer, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// Update writes order if the stored version still equals expectedVersion,
	// appending change entries and coupons not yet stored. On success the stored
	// version and order.Version become expectedVersion+1. Otherwise
	// ErrOrderVersionConflict is returned and nothing is written.
	Update(ctx context.Context, order *entity.Order, expectedVersion int) error
}
