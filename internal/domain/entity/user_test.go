package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUser_RecordPurchase(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		role     Role
		spent    string
		amount   string
		wantRole Role
	}{
		{"customer below premium threshold", RoleCustomer, "9000", "999.99", RoleCustomer},
		{"customer reaches premium exactly", RoleCustomer, "9000", "1000", RolePremium},
		{"customer crosses premium", RoleCustomer, "0", "12000", RolePremium},
		{"customer crosses both thresholds", RoleCustomer, "0", "60000", RoleVIP},
		{"premium below vip threshold", RolePremium, "40000", "9999.99", RolePremium},
		{"premium reaches vip exactly", RolePremium, "40000", "10000", RoleVIP},
		{"seller unchanged past thresholds", RoleSeller, "0", "60000", RoleSeller},
		{"vip unchanged", RoleVIP, "50000", "500", RoleVIP},
		{"admin unchanged past thresholds", RoleAdmin, "0", "60000", RoleAdmin},
		{"logistics unchanged past premium", RoleLogistics, "9500", "1000", RoleLogistics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{
				Role: tt.role,
				PurchaseHistory: PurchaseHistory{
					TotalPurchases: 1,
					TotalSpent:     decimal.RequireFromString(tt.spent),
				},
			}

			previous := u.RecordPurchase(decimal.RequireFromString(tt.amount), at, DefaultEscalation)

			assert.Equal(t, tt.role, previous)
			assert.Equal(t, tt.wantRole, u.Role)
			assert.Equal(t, 2, u.PurchaseHistory.TotalPurchases)
			assert.True(t, decimal.RequireFromString(tt.spent).Add(decimal.RequireFromString(tt.amount)).
				Equal(u.PurchaseHistory.TotalSpent))
			assert.Equal(t, &at, u.PurchaseHistory.LastPurchase)
			assert.Equal(t, at, u.UpdatedAt)
		})
	}
}

func TestUser_RecordPurchase_AverageOrderValue(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	u := &User{Role: RoleCustomer, PurchaseHistory: PurchaseHistory{TotalSpent: decimal.Zero}}

	u.RecordPurchase(decimal.NewFromInt(100), at, DefaultEscalation)
	u.RecordPurchase(decimal.NewFromInt(50), at, DefaultEscalation)
	u.RecordPurchase(decimal.NewFromInt(50), at, DefaultEscalation)

	assert.Equal(t, 3, u.PurchaseHistory.TotalPurchases)
	assert.Equal(t, "66.67", u.PurchaseHistory.AverageOrderValue.StringFixed(2))
	assert.Equal(t, RoleCustomer, u.Role)
}
