package policy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/errors"
)

func TestPurchaseLimitPolicy_LimitsFor(t *testing.T) {
	p := NewPurchaseLimitPolicy()

	tests := []struct {
		role          entity.Role
		maxOrderValue int64
		maxItems      int
		maxQuantity   int
		coupons       bool
		wholesale     bool
		inventory     bool
		refunds       bool
	}{
		{entity.RoleCustomer, 50000, 50, 10, false, false, false, false},
		{entity.RolePremium, 100000, 100, 20, true, false, false, false},
		{entity.RoleVIP, 500000, 200, 50, true, false, false, false},
		{entity.RoleSeller, 1000000, 500, 100, true, true, true, false},
		{entity.RoleManager, 2000000, 1000, 200, true, true, true, true},
		{entity.RoleAdmin, 999999999, 9999, 9999, true, true, true, true},
		{entity.RoleSupport, 100000, 100, 20, true, false, false, true},
		{entity.RoleFinance, 500000, 200, 50, true, true, false, true},
		{entity.RoleLogistics, 200000, 150, 30, true, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			got := p.LimitsFor(tt.role)
			assert.True(t, decimal.NewFromInt(tt.maxOrderValue).Equal(got.MaxOrderValue))
			assert.Equal(t, tt.maxItems, got.MaxItems)
			assert.Equal(t, tt.maxQuantity, got.MaxQuantityPerItem)
			assert.Equal(t, tt.coupons, got.CanApplyCoupons)
			assert.Equal(t, tt.wholesale, got.CanSeeWholesalePrices)
			assert.Equal(t, tt.inventory, got.CanManageInventory)
			assert.Equal(t, tt.refunds, got.CanProcessRefunds)
		})
	}
}

func TestPurchaseLimitPolicy_UnknownRoleGetsCustomerProfile(t *testing.T) {
	p := NewPurchaseLimitPolicy()

	assert.Equal(t, p.LimitsFor(entity.RoleCustomer), p.LimitsFor(entity.Role("superuser")))
}

func TestPurchaseLimitPolicy_CheckLimit_OrderValueBoundary(t *testing.T) {
	p := NewPurchaseLimitPolicy()

	for _, role := range entity.AllRoles {
		limit := p.LimitsFor(role).MaxOrderValue

		t.Run(role.String(), func(t *testing.T) {
			assert.NoError(t, p.CheckLimit(role, LimitOrderValue, limit))

			err := p.CheckLimit(role, LimitOrderValue, limit.Add(decimal.RequireFromString("0.01")))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrLimitExceeded))

			limitErr, ok := errors.AsType[*domainerrors.LimitExceededError](err)
			require.True(t, ok)
			assert.Equal(t, string(LimitOrderValue), limitErr.LimitType)
			assert.Equal(t, limit.String(), limitErr.Limit)
			assert.Equal(t, role.String(), limitErr.Role)
		})
	}
}

func TestPurchaseLimitPolicy_CheckCount(t *testing.T) {
	p := NewPurchaseLimitPolicy()

	assert.NoError(t, p.CheckCount(entity.RoleCustomer, LimitItemQuantity, 10))
	assert.Error(t, p.CheckCount(entity.RoleCustomer, LimitItemQuantity, 11))
	assert.NoError(t, p.CheckCount(entity.RoleCustomer, LimitCartItems, 50))
	assert.Error(t, p.CheckCount(entity.RoleCustomer, LimitCartItems, 51))
	assert.NoError(t, p.CheckCount(entity.RoleSeller, LimitItemQuantity, 100))
}

func TestPurchaseLimitPolicy_CheckFlag(t *testing.T) {
	p := NewPurchaseLimitPolicy()

	tests := []struct {
		name      string
		role      entity.Role
		limitType LimitType
		wantErr   bool
	}{
		{"customer coupons", entity.RoleCustomer, LimitCouponApplication, true},
		{"premium coupons", entity.RolePremium, LimitCouponApplication, false},
		{"vip wholesale", entity.RoleVIP, LimitWholesalePrices, true},
		{"seller wholesale", entity.RoleSeller, LimitWholesalePrices, false},
		{"finance inventory", entity.RoleFinance, LimitInventoryManagement, true},
		{"logistics inventory", entity.RoleLogistics, LimitInventoryManagement, false},
		{"seller refunds", entity.RoleSeller, LimitRefundProcessing, true},
		{"support refunds", entity.RoleSupport, LimitRefundProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CheckFlag(tt.role, tt.limitType)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrLimitExceeded))

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPurchaseLimitPolicy_UnknownLimitTypeIsDenied(t *testing.T) {
	p := NewPurchaseLimitPolicy()

	err := p.CheckLimit(entity.RoleAdmin, LimitType("daily_spend"), decimal.Zero)
	assert.True(t, errors.Is(err, domainerrors.ErrLimitExceeded))
}
