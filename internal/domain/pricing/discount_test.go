package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestDiscountEngine_RoleDiscountPercent(t *testing.T) {
	e := NewDiscountEngine()

	want := map[entity.Role]int64{
		entity.RoleCustomer:  0,
		entity.RolePremium:   5,
		entity.RoleVIP:       10,
		entity.RoleSeller:    15,
		entity.RoleManager:   20,
		entity.RoleAdmin:     25,
		entity.RoleSupport:   10,
		entity.RoleFinance:   15,
		entity.RoleLogistics: 10,
	}
	for role, percent := range want {
		assert.True(t, decimal.NewFromInt(percent).Equal(e.RoleDiscountPercent(role)), role.String())
	}
	assert.True(t, e.RoleDiscountPercent(entity.Role("guest")).IsZero())
}

func TestDiscountEngine_ApplyRoleDiscount_VIP(t *testing.T) {
	e := NewDiscountEngine()
	in := entity.Pricing{Subtotal: dec("1000"), Currency: "USD"}.Recomputed()

	out := e.ApplyRoleDiscount(in, entity.RoleVIP)

	assertDecimal(t, "100", out.Discount)
	assertDecimal(t, "900", out.Total)
	// Input snapshot is left untouched.
	assertDecimal(t, "0", in.Discount)
	assertDecimal(t, "1000", in.Total)
}

func TestDiscountEngine_ApplyRoleDiscount_SellerWholesale(t *testing.T) {
	e := NewDiscountEngine()
	in := entity.Pricing{Subtotal: dec("1200").Mul(decimal.NewFromInt(10))}

	out := e.ApplyRoleDiscount(in, entity.RoleSeller)

	assertDecimal(t, "12000", out.Subtotal)
	assertDecimal(t, "1800", out.Discount)
	assertDecimal(t, "10200", out.Total)
}

func TestDiscountEngine_DiscountLines(t *testing.T) {
	e := NewDiscountEngine()
	items := []entity.OrderItem{
		{Subtotal: dec("100")},
		{Subtotal: dec("33.33")},
	}

	out := e.DiscountLines(items, entity.RolePremium)

	assertDecimal(t, "5", out[0].Discount)
	assertDecimal(t, "1.67", out[1].Discount)
	assert.True(t, items[0].Discount.IsZero())
}

func TestDiscountEngine_ApplyCoupon(t *testing.T) {
	e := NewDiscountEngine()
	base := entity.Pricing{Subtotal: dec("200"), Shipping: dec("10")}

	tests := []struct {
		name       string
		pricing    entity.Pricing
		coupon     entity.Coupon
		wantErr    error
		wantAmount string
		wantTotal  string
	}{
		{
			name:       "percentage is additive with role discount",
			pricing:    entity.Pricing{Subtotal: dec("200"), Shipping: dec("10"), Discount: dec("10")},
			coupon:     entity.Coupon{Type: entity.CouponTypePercentage, Discount: dec("10")},
			wantAmount: "20",
			wantTotal:  "180",
		},
		{
			name:       "fixed",
			pricing:    base,
			coupon:     entity.Coupon{Type: entity.CouponTypeFixed, Discount: dec("25")},
			wantAmount: "25",
			wantTotal:  "185",
		},
		{
			name:       "capped at subtotal",
			pricing:    entity.Pricing{Subtotal: dec("200"), Shipping: dec("10"), Discount: dec("150")},
			coupon:     entity.Coupon{Type: entity.CouponTypeFixed, Discount: dec("100")},
			wantAmount: "50",
			wantTotal:  "10",
		},
		{
			name:       "minimum met exactly",
			pricing:    base,
			coupon:     entity.Coupon{Type: entity.CouponTypeFixed, Discount: dec("5"), MinimumPurchase: dec("200")},
			wantAmount: "5",
			wantTotal:  "205",
		},
		{
			name:    "minimum not met",
			pricing: base,
			coupon:  entity.Coupon{Type: entity.CouponTypeFixed, Discount: dec("5"), MinimumPurchase: dec("200.01")},
			wantErr: domainerrors.ErrCouponMinimumNotMet,
		},
		{
			name:    "already used",
			pricing: base,
			coupon:  entity.Coupon{Type: entity.CouponTypeFixed, Discount: dec("5"), Used: true},
			wantErr: domainerrors.ErrCouponAlreadyUsed,
		},
		{
			name:    "unknown type",
			pricing: base,
			coupon:  entity.Coupon{Type: entity.CouponType("bogo"), Discount: dec("5")},
			wantErr: domainerrors.ErrCouponInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, amount, err := e.ApplyCoupon(tt.pricing.Recomputed(), &tt.coupon)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.wantAmount, amount)
			assertDecimal(t, tt.wantTotal, out.Total)
		})
	}
}
