// Package pricing computes role and coupon discounts. Every function returns a
// new pricing snapshot and leaves its inputs untouched.
package pricing

import (
	"github.com/shopspring/decimal"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// DiscountEngine applies the per-role percentage and coupon discounts. Both are
// computed against the subtotal and added together, never compounded.
type DiscountEngine struct {
	rolePercent entity.PerRole[decimal.Decimal]
}

// NewDiscountEngine builds the engine from the default role table.
func NewDiscountEngine() *DiscountEngine {
	pct := decimal.NewFromInt

	return &DiscountEngine{
		rolePercent: entity.NewPerRole(pct(0), pct(5), pct(10), pct(15), pct(20), pct(25), pct(10), pct(15), pct(10)),
	}
}

// RoleDiscountPercent returns the percentage for role, zero for unknown roles.
func (e *DiscountEngine) RoleDiscountPercent(role entity.Role) decimal.Decimal {
	percent, ok := e.rolePercent.Get(role)
	if !ok {
		return decimal.Zero
	}

	return percent
}

// RoleDiscountAmount is subtotal * percent / 100, rounded to cents.
func (e *DiscountEngine) RoleDiscountAmount(subtotal decimal.Decimal, role entity.Role) decimal.Decimal {
	return percentOf(subtotal, e.RoleDiscountPercent(role))
}

// ApplyRoleDiscount adds the role discount to p.Discount and recomputes the total.
func (e *DiscountEngine) ApplyRoleDiscount(p entity.Pricing, role entity.Role) entity.Pricing {
	p.Discount = p.Discount.Add(e.RoleDiscountAmount(p.Subtotal, role))

	return p.Recomputed()
}

// DiscountLines returns copies of items with each line's share of the role discount set.
func (e *DiscountEngine) DiscountLines(items []entity.OrderItem, role entity.Role) []entity.OrderItem {
	percent := e.RoleDiscountPercent(role)
	out := make([]entity.OrderItem, len(items))
	for i, item := range items {
		item.Discount = percentOf(item.Subtotal, percent)
		out[i] = item
	}

	return out
}

// ApplyCoupon adds the coupon discount to p and recomputes the total. It
// returns the new snapshot and the amount actually deducted. The amount is
// capped so that the accumulated discount never exceeds the subtotal.
func (e *DiscountEngine) ApplyCoupon(p entity.Pricing, coupon *entity.Coupon) (entity.Pricing, decimal.Decimal, error) {
	if coupon.Used {
		return p, decimal.Zero, domainerrors.ErrCouponAlreadyUsed
	}
	if p.Subtotal.LessThan(coupon.MinimumPurchase) {
		return p, decimal.Zero, domainerrors.ErrCouponMinimumNotMet.WithDetails(
			"subtotal " + p.Subtotal.StringFixed(moneyPlaces) + " is below " + coupon.MinimumPurchase.StringFixed(moneyPlaces))
	}

	var amount decimal.Decimal
	switch coupon.Type {
	case entity.CouponTypePercentage:
		amount = percentOf(p.Subtotal, coupon.Discount)
	case entity.CouponTypeFixed:
		amount = coupon.Discount.Round(moneyPlaces)
	default:
		return p, decimal.Zero, domainerrors.ErrCouponInvalid.WithDetails("unknown coupon type " + string(coupon.Type))
	}

	headroom := decimal.Max(p.Subtotal.Sub(p.Discount), decimal.Zero)
	amount = decimal.Min(decimal.Max(amount, decimal.Zero), headroom)

	p.Discount = p.Discount.Add(amount)

	return p.Recomputed(), amount, nil
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred).Round(moneyPlaces)
}
