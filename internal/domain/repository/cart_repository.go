package repository

import (
	"context"

	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart has no line for the product.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists carts as per-owner product lines.
type CartRepository interface {
	// FindByOwner returns the cart of ownerID. A user without lines gets an empty cart.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// UpsertItem inserts the line or replaces the quantity and price snapshot of an existing one.
	UpsertItem(ctx context.Context, ownerID uuid.UUID, item entity.CartItem) error

	// RemoveItem deletes one line.
	RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) error

	// Clear deletes every line of the cart.
	Clear(ctx context.Context, ownerID uuid.UUID) error
}
