package policy

import (
	"github.com/shopspring/decimal"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
)

// LimitType names a purchase limit or capability flag.
type LimitType string

const (
	LimitOrderValue          LimitType = "order_value"
	LimitItemQuantity        LimitType = "item_quantity"
	LimitCartItems           LimitType = "cart_items"
	LimitCouponApplication   LimitType = "coupon_application"
	LimitWholesalePrices     LimitType = "wholesale_prices"
	LimitInventoryManagement LimitType = "inventory_management"
	LimitRefundProcessing    LimitType = "refund_processing"
)

// PurchaseLimits is the spending and capability profile of a role.
type PurchaseLimits struct {
	MaxOrderValue         decimal.Decimal `json:"maxOrderValue"`
	MaxItems              int             `json:"maxItems"`
	MaxQuantityPerItem    int             `json:"maxQuantityPerItem"`
	CanApplyCoupons       bool            `json:"canApplyCoupons"`
	CanSeeWholesalePrices bool            `json:"canSeeWholesalePrices"`
	CanManageInventory    bool            `json:"canManageInventory"`
	CanProcessRefunds     bool            `json:"canProcessRefunds"`
}

// flag returns the capability flag behind a boolean limit type.
func (l PurchaseLimits) flag(limitType LimitType) (bool, bool) {
	switch limitType {
	case LimitCouponApplication:
		return l.CanApplyCoupons, true
	case LimitWholesalePrices:
		return l.CanSeeWholesalePrices, true
	case LimitInventoryManagement:
		return l.CanManageInventory, true
	case LimitRefundProcessing:
		return l.CanProcessRefunds, true
	default:
		return false, false
	}
}

func (l PurchaseLimits) ceiling(limitType LimitType) (decimal.Decimal, bool) {
	switch limitType {
	case LimitOrderValue:
		return l.MaxOrderValue, true
	case LimitItemQuantity:
		return decimal.NewFromInt(int64(l.MaxQuantityPerItem)), true
	case LimitCartItems:
		return decimal.NewFromInt(int64(l.MaxItems)), true
	default:
		return decimal.Zero, false
	}
}

// PurchaseLimitPolicy looks up and enforces the per-role limits.
type PurchaseLimitPolicy struct {
	limits entity.PerRole[PurchaseLimits]
}

// NewPurchaseLimitPolicy builds the policy from the default role table.
func NewPurchaseLimitPolicy() *PurchaseLimitPolicy {
	return &PurchaseLimitPolicy{limits: defaultLimits()}
}

// LimitsFor returns the profile of role. Unknown roles get the customer profile.
func (p *PurchaseLimitPolicy) LimitsFor(role entity.Role) PurchaseLimits {
	if limits, ok := p.limits.Get(role); ok {
		return limits
	}
	limits, _ := p.limits.Get(entity.RoleCustomer)

	return limits
}

// CheckLimit compares observed against role's ceiling for numeric limit
// types, where observed equal to the ceiling passes. For capability flags
// observed is ignored and the check fails when the flag is off. Unknown limit
// types are denied.
func (p *PurchaseLimitPolicy) CheckLimit(role entity.Role, limitType LimitType, observed decimal.Decimal) error {
	limits := p.LimitsFor(role)

	if allowed, ok := limits.flag(limitType); ok {
		if allowed {
			return nil
		}

		return domainerrors.NewLimitExceeded(string(limitType), "false", "true", role.String())
	}

	ceiling, ok := limits.ceiling(limitType)
	if !ok {
		return domainerrors.NewLimitExceeded(string(limitType), "undefined", observed.String(), role.String())
	}
	if observed.GreaterThan(ceiling) {
		return domainerrors.NewLimitExceeded(string(limitType), ceiling.String(), observed.String(), role.String())
	}

	return nil
}

// CheckCount is CheckLimit for integer observations.
func (p *PurchaseLimitPolicy) CheckCount(role entity.Role, limitType LimitType, observed int) error {
	return p.CheckLimit(role, limitType, decimal.NewFromInt(int64(observed)))
}

// CheckFlag is CheckLimit for capability flags.
func (p *PurchaseLimitPolicy) CheckFlag(role entity.Role, limitType LimitType) error {
	return p.CheckLimit(role, limitType, decimal.Zero)
}

func limitProfile(maxOrderValue int64, maxItems, maxQuantity int, coupons, wholesale, inventory, refunds bool) PurchaseLimits {
	return PurchaseLimits{
		MaxOrderValue:         decimal.NewFromInt(maxOrderValue),
		MaxItems:              maxItems,
		MaxQuantityPerItem:    maxQuantity,
		CanApplyCoupons:       coupons,
		CanSeeWholesalePrices: wholesale,
		CanManageInventory:    inventory,
		CanProcessRefunds:     refunds,
	}
}

func defaultLimits() entity.PerRole[PurchaseLimits] {
	return entity.NewPerRole(
		limitProfile(50000, 50, 10, false, false, false, false),
		limitProfile(100000, 100, 20, true, false, false, false),
		limitProfile(500000, 200, 50, true, false, false, false),
		limitProfile(1000000, 500, 100, true, true, true, false),
		limitProfile(2000000, 1000, 200, true, true, true, true),
		limitProfile(999999999, 9999, 9999, true, true, true, true),
		limitProfile(100000, 100, 20, true, false, false, true),
		limitProfile(500000, 200, 50, true, true, false, true),
		limitProfile(200000, 150, 30, true, false, true, false),
	)
}

