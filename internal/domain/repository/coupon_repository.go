package repository

import (
	"context"
	"time"

	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when the owner has no coupon with the code.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponAlreadyClaimed is returned when a claim finds the coupon already used.
	ErrCouponAlreadyClaimed = errors.New("coupon already claimed")
)

// CouponRepository stores user-owned coupons.
type CouponRepository interface {
	// FindByOwnerAndCode retrieves the coupon ownerID holds under code.
	FindByOwnerAndCode(ctx context.Context, ownerID uuid.UUID, code string) (*entity.Coupon, error)

	// Claim flips used from false to true in a single conditional write. Exactly
	// one of any number of concurrent claims succeeds; the others get
	// ErrCouponAlreadyClaimed.
	Claim(ctx context.Context, couponID, ownerID uuid.UUID, at time.Time) error
}
