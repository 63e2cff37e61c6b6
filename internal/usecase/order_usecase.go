package usecase

import (
	"context"
	"time"

	"orderguard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderLineInput is one requested product. Prices are never taken from the caller.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items          []OrderLineInput
	PaymentMethod  entity.PaymentMethod
	ShippingMethod entity.ShippingMethod
	ShippingCost   decimal.Decimal
	Notes          entity.OrderNotes
}

// CheckoutInput turns the caller's cart into an order.
type CheckoutInput struct {
	PaymentMethod  entity.PaymentMethod
	ShippingMethod entity.ShippingMethod
	ShippingCost   decimal.Decimal
	Notes          entity.OrderNotes
}

// ListOrdersInput narrows an order listing. CustomerID is honored only for
// administrative roles; everyone else always gets their own orders.
type ListOrdersInput struct {
	CustomerID *uuid.UUID
	Limit      int
	Offset     int
}

// RefundInput requests a refund. A nil Amount refunds the whole total.
type RefundInput struct {
	Amount *decimal.Decimal
	Reason string
}

// ChangeStatusInput moves an order to another status.
type ChangeStatusInput struct {
	Status entity.OrderStatus
	Reason string
}

// --- Output DTOs ---

// OrderItemView is an order line as shown to callers.
type OrderItemView struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PaymentView is the payment summary shown to callers.
type PaymentView struct {
	Method       entity.PaymentMethod `json:"method"`
	Status       entity.PaymentStatus `json:"status"`
	PaidAt       *time.Time           `json:"paidAt,omitempty"`
	RefundedAt   *time.Time           `json:"refundedAt,omitempty"`
	RefundAmount *decimal.Decimal     `json:"refundAmount,omitempty"`
}

// OrderView is an order as returned by the API. The public view leaves every
// pointer field below Coupons nil; the detailed view fills them in.
type OrderView struct {
	ID          uuid.UUID              `json:"id"`
	OrderNumber string                 `json:"orderNumber"`
	CustomerID  uuid.UUID              `json:"customerId"`
	Status      entity.OrderStatus     `json:"status"`
	Items       []OrderItemView        `json:"items"`
	Pricing     entity.Pricing         `json:"pricing"`
	Payment     PaymentView            `json:"payment"`
	Shipping    entity.Shipping        `json:"shipping"`
	Coupons     []entity.AppliedCoupon `json:"coupons"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`

	Notes         *entity.OrderNotes         `json:"notes,omitempty"`
	Audit         *entity.OrderAudit         `json:"audit,omitempty"`
	Authorization *entity.OrderAuthorization `json:"authorization,omitempty"`
	ChangeHistory []entity.ChangeEntry       `json:"changeHistory,omitempty"`
	Version       int                        `json:"version,omitempty"`
}

// PublicOrderView builds the view shown to customers. It has no authorization
// snapshot, no audit and no internal notes.
func PublicOrderView(order *entity.Order) *OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	view := &OrderView{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		Items:       items,
		Pricing:     order.Pricing,
		Payment: PaymentView{
			Method:     order.Payment.Method,
			Status:     order.Payment.Status,
			PaidAt:     order.Payment.PaidAt,
			RefundedAt: order.Payment.RefundedAt,
		},
		Shipping:  order.Shipping,
		Coupons:   append([]entity.AppliedCoupon{}, order.Coupons...),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	if order.Payment.RefundedAt != nil {
		amount := order.Payment.RefundAmount
		view.Payment.RefundAmount = &amount
	}
	if order.Notes.Customer != "" || order.Notes.Shipping != "" {
		view.Notes = &entity.OrderNotes{Customer: order.Notes.Customer, Shipping: order.Notes.Shipping}
	}

	return view
}

// DetailedOrderView builds the full view for staff and other privileged roles.
func DetailedOrderView(order *entity.Order) *OrderView {
	view := PublicOrderView(order)

	notes := order.Notes
	audit := order.Audit
	authorization := order.Authorization
	view.Notes = &notes
	view.Audit = &audit
	view.Authorization = &authorization
	view.ChangeHistory = append([]entity.ChangeEntry{}, order.ChangeHistory...)
	view.Version = order.Version

	return view
}

// OrderViewFor picks the view appropriate for role: customers always get the
// public view, every other role the detailed one.
func OrderViewFor(order *entity.Order, role entity.Role) *OrderView {
	if role == entity.RoleCustomer {
		return PublicOrderView(order)
	}

	return DetailedOrderView(order)
}

// OrderUsecase defines order placement and the order lifecycle, every call
// authorized against the acting user.
type OrderUsecase interface {
	ListOrders(ctx context.Context, actorID uuid.UUID, input *ListOrdersInput) ([]*OrderView, error)
	GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*OrderView, error)
	CreateOrder(ctx context.Context, actorID uuid.UUID, input *CreateOrderInput) (*OrderView, error)
	Checkout(ctx context.Context, actorID uuid.UUID, input *CheckoutInput) (*OrderView, error)
	CancelOrder(ctx context.Context, actorID, orderID uuid.UUID, reason string) (*OrderView, error)
	RefundOrder(ctx context.Context, actorID, orderID uuid.UUID, input *RefundInput) (*OrderView, error)
	ChangeOrderStatus(ctx context.Context, actorID, orderID uuid.UUID, input *ChangeStatusInput) (*OrderView, error)
	UpdateOrderNotes(ctx context.Context, actorID, orderID uuid.UUID, internal string) (*OrderView, error)
}
