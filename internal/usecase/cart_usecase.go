package usecase

import (
	"context"

	"orderguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is a cart with its derived totals.
type CartView struct {
	OwnerID    uuid.UUID         `json:"ownerId"`
	Items      []entity.CartItem `json:"items"`
	TotalUnits int               `json:"totalUnits"`
	Total      decimal.Decimal   `json:"total"`
}

// NewCartView derives the totals of cart.
func NewCartView(cart *entity.Cart) *CartView {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &CartView{
		OwnerID:    cart.OwnerID,
		Items:      items,
		TotalUnits: cart.TotalUnits(),
		Total:      cart.Total(),
	}
}

// CartItemInput adds a product or sets its quantity.
type CartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase manages the acting user's cart. OwnerID is the cart being
// addressed; administrative roles may address carts of other users.
type CartUsecase interface {
	GetCart(ctx context.Context, actorID, ownerID uuid.UUID) (*CartView, error)
	AddCartItem(ctx context.Context, actorID, ownerID uuid.UUID, input *CartItemInput) (*CartView, error)
	UpdateCartItem(ctx context.Context, actorID, ownerID uuid.UUID, input *CartItemInput) (*CartView, error)
	RemoveCartItem(ctx context.Context, actorID, ownerID, productID uuid.UUID) (*CartView, error)
	ClearCart(ctx context.Context, actorID, ownerID uuid.UUID) error
}

// WishlistUsecase manages saved products.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, actorID, ownerID uuid.UUID) (*entity.Wishlist, error)
	AddWishlistItem(ctx context.Context, actorID, ownerID, productID uuid.UUID) (*entity.Wishlist, error)
	RemoveWishlistItem(ctx context.Context, actorID, ownerID, productID uuid.UUID) (*entity.Wishlist, error)
}
