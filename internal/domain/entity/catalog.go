package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog view the purchase engine consumes: existence, price and stock.
type Product struct {
	ID             uuid.UUID
	Name           string
	Price          decimal.Decimal
	WholesalePrice decimal.Decimal // Zero when the product has no wholesale tier.
	Stock          int
	IsActive       bool
	UpdatedAt      time.Time
}

// HasWholesalePrice reports whether a wholesale tier is defined.
func (p *Product) HasWholesalePrice() bool {
	return p.WholesalePrice.IsPositive()
}

// UnitPrice returns the wholesale price when allowed and defined, the list price otherwise.
func (p *Product) UnitPrice(wholesale bool) decimal.Decimal {
	if wholesale && p.HasWholesalePrice() {
		return p.WholesalePrice
	}

	return p.Price
}

// CouponType tells how a coupon's discount value is interpreted.
type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
)

// IsValid checks if the CouponType is a valid value.
func (t CouponType) IsValid() bool {
	return t == CouponTypePercentage || t == CouponTypeFixed
}

// Coupon is a one-shot discount owned by a single user.
type Coupon struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Code            string
	Discount        decimal.Decimal // Percent for percentage coupons, currency amount for fixed ones.
	Type            CouponType
	ValidFrom       time.Time
	ValidUntil      time.Time
	MinimumPurchase decimal.Decimal
	Used            bool
	UsedAt          *time.Time
}

// IsActiveAt reports whether now falls inside the validity window.
func (c *Coupon) IsActiveAt(now time.Time) bool {
	return !now.Before(c.ValidFrom) && !now.After(c.ValidUntil)
}
