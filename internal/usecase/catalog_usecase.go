package usecase

import (
	"context"

	"orderguard/internal/domain/entity"
	"orderguard/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplyCouponInput redeems one of the caller's coupons on an order.
type ApplyCouponInput struct {
	CouponCode string
	OrderID    uuid.UUID
}

// CouponUsecase redeems coupons.
type CouponUsecase interface {
	ApplyCoupon(ctx context.Context, actorID uuid.UUID, input *ApplyCouponInput) (*OrderView, error)
}

// ProductQuote is the price a role would pay for a product. WholesalePrice is
// set only for roles allowed to see it.
type ProductQuote struct {
	ProductID      uuid.UUID        `json:"productId"`
	Name           string           `json:"name"`
	Price          decimal.Decimal  `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesalePrice,omitempty"`
	UnitPrice      decimal.Decimal  `json:"unitPrice"`
	RoleDiscount   decimal.Decimal  `json:"roleDiscount"`
	InStock        bool             `json:"inStock"`
}

// RestockInput adds units to a product.
type RestockInput struct {
	Quantity int
}

// CatalogUsecase exposes the catalog operations the purchase engine owns.
type CatalogUsecase interface {
	GetProductQuote(ctx context.Context, actorID, productID uuid.UUID) (*ProductQuote, error)
	RestockProduct(ctx context.Context, actorID, productID uuid.UUID, input *RestockInput) (*entity.Product, error)
}

// PermissionsOutput describes what the calling role may do.
type PermissionsOutput struct {
	Role                  entity.Role           `json:"role"`
	Permissions           policy.Capabilities   `json:"permissions"`
	Limits                policy.PurchaseLimits `json:"limits"`
	RoleDiscount          decimal.Decimal       `json:"roleDiscount"`
	CanPurchase           bool                  `json:"canPurchase"`
	CanApplyCoupons       bool                  `json:"canApplyCoupons"`
	CanSeeWholesalePrices bool                  `json:"canSeeWholesalePrices"`
	CanManageInventory    bool                  `json:"canManageInventory"`
	CanProcessRefunds     bool                  `json:"canProcessRefunds"`
}

// PermissionUsecase reports the caller's permission profile.
type PermissionUsecase interface {
	GetPermissions(ctx context.Context, actorID uuid.UUID) (*PermissionsOutput, error)
}
