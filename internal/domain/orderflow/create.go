// Package orderflow builds orders and drives them through their legal
// transitions. Every operation is pure: it returns a new order and never
// modifies the one it was given.
package orderflow

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/policy"
	"orderguard/internal/domain/pricing"
)

// DefaultCurrency is used when a new order does not name one.
const DefaultCurrency = "USD"

// Line is one requested product with its resolved catalog record.
type Line struct {
	Product  *entity.Product
	Quantity int
}

// NewOrder is the input of Create. Prices always come from the catalog records.
type NewOrder struct {
	Lines          []Line
	PaymentMethod  entity.PaymentMethod
	ShippingMethod entity.ShippingMethod
	ShippingCost   decimal.Decimal
	Notes          entity.OrderNotes
	Currency       string
	Wholesale      bool // Price lines at the wholesale tier where one exists.
	IPAddress      string
	UserAgent      string
}

// StateMachine owns order construction and every status transition.
type StateMachine struct {
	limits       *policy.PurchaseLimitPolicy
	discounts    *pricing.DiscountEngine
	orderNumbers func(time.Time) string
}

// NewStateMachine creates a StateMachine.
func NewStateMachine(limits *policy.PurchaseLimitPolicy, discounts *pricing.DiscountEngine) *StateMachine {
	return &StateMachine{
		limits:       limits,
		discounts:    discounts,
		orderNumbers: OrderNumber,
	}
}

// OrderNumber formats ORD-YYYYMMDD-NNNN from the UTC date and four random digits.
func OrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", now.UTC().Format("20060102"), rand.IntN(10000))
}

// Create validates data against actor's limits and builds a pending order.
// Limits are checked in order: quantity per line, total units, then order
// value after the role discount. A failure returns no order.
func (m *StateMachine) Create(data NewOrder, actor *entity.User, now time.Time) (*entity.Order, error) {
	if err := validateNewOrder(data); err != nil {
		return nil, err
	}

	lines := mergeLines(data.Lines)
	units := 0
	for _, line := range lines {
		if err := m.limits.CheckCount(actor.Role, policy.LimitItemQuantity, line.Quantity); err != nil {
			return nil, err
		}
		if !line.Product.IsActive {
			return nil, domainerrors.NewResourceNotFound("product", line.Product.ID.String())
		}
		if line.Product.Stock < line.Quantity {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("product %s has %d in stock, %d requested", line.Product.ID, line.Product.Stock, line.Quantity))
		}
		units += line.Quantity
	}
	if err := m.limits.CheckCount(actor.Role, policy.LimitCartItems, units); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		unitPrice := line.Product.UnitPrice(data.Wholesale)
		lineSubtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, entity.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			Subtotal:  lineSubtotal,
			Discount:  decimal.Zero,
			Tax:       decimal.Zero,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	currency := data.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	amounts := m.discounts.ApplyRoleDiscount(entity.Pricing{
		Subtotal: subtotal,
		Tax:      decimal.Zero,
		Shipping: data.ShippingCost,
		Discount: decimal.Zero,
		Currency: currency,
	}, actor.Role)

	if err := m.limits.CheckLimit(actor.Role, policy.LimitOrderValue, amounts.Total); err != nil {
		return nil, err
	}

	authz := DefaultAuthorization()
	notes := data.Notes
	if !authz.EditPermissions.Contains(actor.Role) {
		notes.Internal = ""
	}

	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: m.orderNumbers(now),
		CustomerID:  actor.ID,
		Status:      entity.OrderStatusPending,
		Items:       m.discounts.DiscountLines(items, actor.Role),
		Pricing:     amounts,
		Payment: entity.Payment{
			Method:       data.PaymentMethod,
			Status:       entity.PaymentStatusPending,
			RefundAmount: decimal.Zero,
		},
		Shipping:      entity.Shipping{Method: data.ShippingMethod},
		Authorization: authz,
		Notes:         notes,
		Audit: entity.OrderAudit{
			CreatedBy: actor.ID,
			IPAddress: data.IPAddress,
			UserAgent: data.UserAgent,
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.ChangeHistory = []entity.ChangeEntry{
		newEntry(actor, now, entity.ChangeTypeCreated, "", string(entity.OrderStatusPending), "order created"),
	}

	return order, nil
}

func validateNewOrder(data NewOrder) error {
	if len(data.Lines) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}
	for _, line := range data.Lines {
		if line.Product == nil {
			return domainerrors.ErrValidationFailed.WithDetails("order line has no product")
		}
		if line.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
	}
	if !data.PaymentMethod.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + string(data.PaymentMethod))
	}
	if !data.ShippingMethod.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown shipping method " + string(data.ShippingMethod))
	}
	if data.ShippingCost.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("shipping cost cannot be negative")
	}

	return nil
}

// mergeLines folds repeated products into one line, keeping first-seen order.
func mergeLines(lines []Line) []Line {
	merged := make([]Line, 0, len(lines))
	position := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if i, ok := position[line.Product.ID]; ok {
			merged[i].Quantity += line.Quantity

			continue
		}
		position[line.Product.ID] = len(merged)
		merged = append(merged, line)
	}

	return merged
}

func newEntry(actor *entity.User, at time.Time, changeType entity.ChangeType, previous, next, reason string) entity.ChangeEntry {
	return entity.ChangeEntry{
		ID:            uuid.New(),
		ChangedBy:     actor.ID,
		ChangedAt:     at,
		ChangeType:    changeType,
		PreviousValue: previous,
		NewValue:      next,
		Reason:        reason,
	}
}
