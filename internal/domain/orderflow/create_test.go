package orderflow

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/policy"
	"orderguard/internal/domain/pricing"
	"orderguard/internal/errors"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createTestStateMachine() *StateMachine {
	m := NewStateMachine(policy.NewPurchaseLimitPolicy(), pricing.NewDiscountEngine())
	m.orderNumbers = func(time.Time) string { return "ORD-20260314-0042" }

	return m
}

func newActor(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Role: role, Status: entity.AccountStatusActive, EmailVerified: true}
}

func newProduct(price, wholesale string, stock int) *entity.Product {
	p := &entity.Product{ID: uuid.New(), Name: "Widget", Price: dec(price), Stock: stock, IsActive: true}
	if wholesale != "" {
		p.WholesalePrice = dec(wholesale)
	}

	return p
}

func newOrderInput(lines ...Line) NewOrder {
	return NewOrder{
		Lines:          lines,
		PaymentMethod:  entity.PaymentMethodCreditCard,
		ShippingMethod: entity.ShippingMethodStandard,
		ShippingCost:   decimal.Zero,
	}
}

func TestStateMachine_Create_VIPRoleDiscount(t *testing.T) {
	m := createTestStateMachine()
	actor := newActor(entity.RoleVIP)
	product := newProduct("250", "", 100)

	order, err := m.Create(newOrderInput(Line{Product: product, Quantity: 4}), actor, testNow)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, actor.ID, order.CustomerID)
	assert.Equal(t, "ORD-20260314-0042", order.OrderNumber)
	assert.True(t, dec("1000").Equal(order.Pricing.Subtotal))
	assert.True(t, dec("100").Equal(order.Pricing.Discount))
	assert.True(t, dec("900").Equal(order.Pricing.Total))
	assert.Equal(t, DefaultCurrency, order.Pricing.Currency)
	assert.True(t, dec("100").Equal(order.Items[0].Discount))
	assert.Equal(t, entity.PaymentStatusPending, order.Payment.Status)
	assert.Equal(t, 1, order.Version)
	assert.Equal(t, actor.ID, order.Audit.CreatedBy)
	require.Len(t, order.ChangeHistory, 1)
	assert.Equal(t, entity.ChangeTypeCreated, order.ChangeHistory[0].ChangeType)
}

func TestStateMachine_Create_SellerWholesale(t *testing.T) {
	m := createTestStateMachine()
	actor := newActor(entity.RoleSeller)
	product := newProduct("1500", "1200", 50)

	input := newOrderInput(Line{Product: product, Quantity: 10})
	input.Wholesale = true

	order, err := m.Create(input, actor, testNow)
	require.NoError(t, err)

	assert.True(t, dec("1200").Equal(order.Items[0].UnitPrice))
	assert.True(t, dec("12000").Equal(order.Pricing.Subtotal))
	assert.True(t, dec("1800").Equal(order.Pricing.Discount))
	assert.True(t, dec("10200").Equal(order.Pricing.Total))
}

func TestStateMachine_Create_ListPriceWithoutWholesale(t *testing.T) {
	m := createTestStateMachine()
	product := newProduct("1500", "1200", 50)

	order, err := m.Create(newOrderInput(Line{Product: product, Quantity: 1}), newActor(entity.RoleCustomer), testNow)
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(order.Items[0].UnitPrice))
}

func TestStateMachine_Create_OrderValueBoundary(t *testing.T) {
	m := createTestStateMachine()
	actor := newActor(entity.RoleCustomer)
	product := newProduct("5000", "", 100)

	atLimit := newOrderInput(Line{Product: product, Quantity: 10})
	_, err := m.Create(atLimit, actor, testNow)
	require.NoError(t, err)

	overLimit := atLimit
	overLimit.ShippingCost = dec("0.01")
	_, err = m.Create(overLimit, actor, testNow)
	require.Error(t, err)

	limitErr, ok := errors.AsType[*domainerrors.LimitExceededError](err)
	require.True(t, ok)
	assert.Equal(t, string(policy.LimitOrderValue), limitErr.LimitType)
	assert.Equal(t, "50000.01", limitErr.Observed)
}

func TestStateMachine_Create_LimitOrder(t *testing.T) {
	m := createTestStateMachine()
	actor := newActor(entity.RoleCustomer)

	// Repeated product lines are merged before the per-line check.
	product := newProduct("1", "", 1000)
	_, err := m.Create(newOrderInput(Line{Product: product, Quantity: 6}, Line{Product: product, Quantity: 5}), actor, testNow)
	limitErr, ok := errors.AsType[*domainerrors.LimitExceededError](err)
	require.True(t, ok)
	assert.Equal(t, string(policy.LimitItemQuantity), limitErr.LimitType)

	lines := make([]Line, 0, 6)
	for range 6 {
		lines = append(lines, Line{Product: newProduct("1", "", 100), Quantity: 9})
	}
	_, err = m.Create(newOrderInput(lines...), actor, testNow)
	limitErr, ok = errors.AsType[*domainerrors.LimitExceededError](err)
	require.True(t, ok)
	assert.Equal(t, string(policy.LimitCartItems), limitErr.LimitType)
	assert.Equal(t, "54", limitErr.Observed)
}

func TestStateMachine_Create_MergesLines(t *testing.T) {
	m := createTestStateMachine()
	product := newProduct("10", "", 100)

	order, err := m.Create(newOrderInput(Line{Product: product, Quantity: 2}, Line{Product: product, Quantity: 3}),
		newActor(entity.RoleCustomer), testNow)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.True(t, dec("50").Equal(order.Pricing.Total))
}

func TestStateMachine_Create_Rejects(t *testing.T) {
	m := createTestStateMachine()
	actor := newActor(entity.RoleCustomer)
	inactive := newProduct("10", "", 5)
	inactive.IsActive = false

	tests := []struct {
		name  string
		input NewOrder
		want  error
	}{
		{"no lines", newOrderInput(), domainerrors.ErrValidationFailed},
		{"zero quantity", newOrderInput(Line{Product: newProduct("10", "", 5), Quantity: 0}), domainerrors.ErrValidationFailed},
		{"nil product", newOrderInput(Line{Quantity: 1}), domainerrors.ErrValidationFailed},
		{"inactive product", newOrderInput(Line{Product: inactive, Quantity: 1}), domainerrors.ErrResourceNotFound},
		{"insufficient stock", newOrderInput(Line{Product: newProduct("10", "", 2), Quantity: 3}), domainerrors.ErrInsufficientStock},
		{
			"bad payment method",
			NewOrder{Lines: []Line{{Product: newProduct("10", "", 5), Quantity: 1}}, PaymentMethod: "iou", ShippingMethod: entity.ShippingMethodPickup},
			domainerrors.ErrValidationFailed,
		},
		{
			"negative shipping",
			NewOrder{
				Lines:          []Line{{Product: newProduct("10", "", 5), Quantity: 1}},
				PaymentMethod:  entity.PaymentMethodCash,
				ShippingMethod: entity.ShippingMethodPickup,
				ShippingCost:   dec("-1"),
			},
			domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := m.Create(tt.input, actor, testNow)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestStateMachine_Create_InternalNotesRequireEditPermission(t *testing.T) {
	m := createTestStateMachine()

	tests := []struct {
		name         string
		role         entity.Role
		wantInternal string
	}{
		{"customer note dropped", entity.RoleCustomer, ""},
		{"premium note dropped", entity.RolePremium, ""},
		{"finance note dropped", entity.RoleFinance, ""},
		{"manager note kept", entity.RoleManager, "approved by manager, skip fraud check"},
		{"support note kept", entity.RoleSupport, "approved by manager, skip fraud check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newOrderInput(Line{Product: newProduct("10", "", 5), Quantity: 1})
			input.Notes = entity.OrderNotes{Customer: "leave at door", Internal: "approved by manager, skip fraud check"}

			order, err := m.Create(input, newActor(tt.role), testNow)
			require.NoError(t, err)

			assert.Equal(t, "leave at door", order.Notes.Customer)
			assert.Equal(t, tt.wantInternal, order.Notes.Internal)
		})
	}
}

func TestDefaultAuthorization(t *testing.T) {
	auth := DefaultAuthorization()

	assert.Equal(t, entity.AllRoles, auth.ViewPermissions)
	assert.Equal(t, entity.Roles{entity.RoleManager, entity.RoleAdmin, entity.RoleSupport}, auth.EditPermissions)
	assert.Equal(t, entity.Roles{entity.RoleCustomer, entity.RoleManager, entity.RoleAdmin, entity.RoleSupport}, auth.CancelPermissions)
	assert.Equal(t, entity.Roles{entity.RoleManager, entity.RoleAdmin, entity.RoleSupport, entity.RoleFinance}, auth.RefundPermissions)
	assert.Equal(t, entity.Roles{entity.RoleManager, entity.RoleAdmin, entity.RoleLogistics}, auth.StatusChangePermissions)
}

func TestOrderNumber(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^ORD-20260314-\d{4}$`), OrderNumber(testNow))
}
