package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the state an order is in.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusReturned   OrderStatus = "returned"
	OrderStatusOnHold     OrderStatus = "on_hold"
	OrderStatusBackorder  OrderStatus = "backorder"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded, OrderStatusReturned,
		OrderStatusOnHold, OrderStatusBackorder:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves this status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCrypto       PaymentMethod = "crypto"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPaypal,
		PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCrypto:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the payment independently of the order status.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// ShippingMethod is the delivery option chosen at checkout.
type ShippingMethod string

const (
	ShippingMethodStandard  ShippingMethod = "standard"
	ShippingMethodExpress   ShippingMethod = "express"
	ShippingMethodOvernight ShippingMethod = "overnight"
	ShippingMethodPickup    ShippingMethod = "pickup"
)

// IsValid checks if the ShippingMethod is a valid value.
func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingMethodStandard, ShippingMethodExpress, ShippingMethodOvernight, ShippingMethodPickup:
		return true
	default:
		return false
	}
}

// ChangeType classifies a change-history entry.
type ChangeType string

const (
	ChangeTypeCreated       ChangeType = "created"
	ChangeTypeModified      ChangeType = "modified"
	ChangeTypeCancelled     ChangeType = "cancelled"
	ChangeTypeRefunded      ChangeType = "refunded"
	ChangeTypeStatusChanged ChangeType = "status_changed"
)

// OrderItem is a priced line of an order.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
}

// Pricing holds the order amounts. Total is always derived, see Recomputed.
type Pricing struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

// Recomputed returns a copy with Total = Subtotal + Tax + Shipping - Discount.
func (p Pricing) Recomputed() Pricing {
	p.Total = p.Subtotal.Add(p.Tax).Add(p.Shipping).Sub(p.Discount)

	return p
}

// Payment is the payment record attached to an order.
type Payment struct {
	Method        PaymentMethod   `json:"method"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	RefundedAt    *time.Time      `json:"refundedAt,omitempty"`
	RefundAmount  decimal.Decimal `json:"refundAmount"`
}

// Shipping is the delivery record attached to an order.
type Shipping struct {
	Method         ShippingMethod `json:"method"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	ShippedAt      *time.Time     `json:"shippedAt,omitempty"`
	DeliveredAt    *time.Time     `json:"deliveredAt,omitempty"`
}

// OrderAuthorization is the role snapshot taken when the order is created.
// It is never edited afterwards.
type OrderAuthorization struct {
	ViewPermissions         Roles `json:"viewPermissions"`
	EditPermissions         Roles `json:"editPermissions"`
	CancelPermissions       Roles `json:"cancelPermissions"`
	RefundPermissions       Roles `json:"refundPermissions"`
	StatusChangePermissions Roles `json:"statusChangePermissions"`
}

// ChangeEntry is one immutable line of an order's change history.
type ChangeEntry struct {
	ID            uuid.UUID  `json:"id"`
	ChangedBy     uuid.UUID  `json:"changedBy"`
	ChangedAt     time.Time  `json:"changedAt"`
	ChangeType    ChangeType `json:"changeType"`
	PreviousValue string     `json:"previousValue,omitempty"`
	NewValue      string     `json:"newValue,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

// AppliedCoupon records a coupon redeemed against an order.
type AppliedCoupon struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Discount  decimal.Decimal `json:"discount"` // Amount actually deducted.
	Type      CouponType      `json:"type"`
	AppliedAt time.Time       `json:"appliedAt"`
}

// OrderNotes are free-text notes. Internal notes are staff-only.
type OrderNotes struct {
	Customer string `json:"customer,omitempty"`
	Internal string `json:"internal,omitempty"`
	Shipping string `json:"shipping,omitempty"`
}

// OrderAudit remembers who performed each kind of mutation last.
type OrderAudit struct {
	CreatedBy   uuid.UUID  `json:"createdBy"`
	ModifiedBy  *uuid.UUID `json:"modifiedBy,omitempty"`
	CancelledBy *uuid.UUID `json:"cancelledBy,omitempty"`
	RefundedBy  *uuid.UUID `json:"refundedBy,omitempty"`
	IPAddress   string     `json:"ipAddress,omitempty"`
	UserAgent   string     `json:"userAgent,omitempty"`
}

// Order is the aggregate driven by the order state machine.
type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	CustomerID    uuid.UUID
	Status        OrderStatus
	Items         []OrderItem
	Pricing       Pricing
	Payment       Payment
	Shipping      Shipping
	Authorization OrderAuthorization
	ChangeHistory []ChangeEntry
	Coupons       []AppliedCoupon
	Notes         OrderNotes
	Audit         OrderAudit
	Version       int // Optimistic concurrency token, bumped on every persisted change.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.CustomerID == userID
}

// TotalUnits sums the quantity of every line.
func (o *Order) TotalUnits() int {
	units := 0
	for _, item := range o.Items {
		units += item.Quantity
	}

	return units
}

// Clone returns a deep copy so transitions never alias the caller's order.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	c.ChangeHistory = slices.Clone(o.ChangeHistory)
	c.Coupons = slices.Clone(o.Coupons)
	c.Authorization = OrderAuthorization{
		ViewPermissions:         slices.Clone(o.Authorization.ViewPermissions),
		EditPermissions:         slices.Clone(o.Authorization.EditPermissions),
		CancelPermissions:       slices.Clone(o.Authorization.CancelPermissions),
		RefundPermissions:       slices.Clone(o.Authorization.RefundPermissions),
		StatusChangePermissions: slices.Clone(o.Authorization.StatusChangePermissions),
	}
	c.Payment.PaidAt = clonePtr(o.Payment.PaidAt)
	c.Payment.RefundedAt = clonePtr(o.Payment.RefundedAt)
	c.Shipping.ShippedAt = clonePtr(o.Shipping.ShippedAt)
	c.Shipping.DeliveredAt = clonePtr(o.Shipping.DeliveredAt)
	c.Audit.ModifiedBy = clonePtr(o.Audit.ModifiedBy)
	c.Audit.CancelledBy = clonePtr(o.Audit.CancelledBy)
	c.Audit.RefundedBy = clonePtr(o.Audit.RefundedBy)

	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
