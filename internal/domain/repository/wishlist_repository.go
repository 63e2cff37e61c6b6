package repository

import (
	"context"

	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for wishlist persistence.
var (
	// ErrWishlistItemNotFound is returned when the product is not on the wishlist.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrWishlistItemExists is returned when the product is already on the wishlist.
	ErrWishlistItemExists = errors.New("wishlist item already exists")
)

// WishlistRepository persists wishlists as per-owner product sets.
type WishlistRepository interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Wishlist, error)
	Add(ctx context.Context, ownerID uuid.UUID, item entity.WishlistItem) error
	Remove(ctx context.Context, ownerID, productID uuid.UUID) error
}
