package handler

import (
	"log/slog"
	"net/http"

	"orderguard/internal/delivery/http/response"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested order line.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// NotesRequest carries the customer-facing notes of a new order. Staff notes
// go through PUT /api/v1/orders/:orderId/notes.
type NotesRequest struct {
	Customer string `json:"customer" validate:"max=1000"`
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	PaymentMethod  entity.PaymentMethod  `json:"paymentMethod" validate:"required,oneof=credit_card debit_card paypal bank_transfer cash crypto"`
	ShippingMethod entity.ShippingMethod `json:"shippingMethod" validate:"required,oneof=standard express overnight pickup"`
	ShippingCost   decimal.Decimal       `json:"shippingCost"`
	Notes          NotesRequest          `json:"notes"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CheckoutRequest
	Items []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// CancelRequest is the body of PUT /api/v1/orders/:orderId/cancel.
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// RefundRequest is the body of POST /api/v1/orders/:orderId/refund. A missing
// amount refunds the whole order.
type RefundRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Reason string           `json:"reason" validate:"required,max=500"`
}

// StatusRequest is the body of PUT /api/v1/orders/:orderId/status.
type StatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
	Reason string             `json:"reason" validate:"max=500"`
}

// InternalNotesRequest is the body of PUT /api/v1/orders/:orderId/notes.
type InternalNotesRequest struct {
	Internal string `json:"internal" validate:"max=1000"`
}

func (r CheckoutRequest) shippingCost() (decimal.Decimal, error) {
	if r.ShippingCost.IsNegative() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("shippingCost must not be negative")
	}

	return r.ShippingCost, nil
}

// ListOrders lists the orders visible to the caller.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListOrdersInput{}
	var customerID string
	if err := echo.QueryParamsBinder(c).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		String("customerId", &customerID).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid pagination parameters")
	}
	if customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid customerId")
		}
		input.CustomerID = &id
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order in the view the caller's role allows.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, orderID, err := h.actorAndOrder(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CreateOrder places an order from explicit lines.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	shippingCost, err := req.shippingCost()
	if err != nil {
		return err
	}

	items := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, &usecase.CreateOrderInput{
		Items:          items,
		PaymentMethod:  req.PaymentMethod,
		ShippingMethod: req.ShippingMethod,
		ShippingCost:   shippingCost,
		Notes:          entity.OrderNotes{Customer: req.Notes.Customer},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// Checkout turns the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	shippingCost, err := req.shippingCost()
	if err != nil {
		return err
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), actor, &usecase.CheckoutInput{
		PaymentMethod:  req.PaymentMethod,
		ShippingMethod: req.ShippingMethod,
		ShippingCost:   shippingCost,
		Notes:          entity.OrderNotes{Customer: req.Notes.Customer},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// CancelOrder cancels an order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, orderID, err := h.actorAndOrder(c)
	if err != nil {
		return err
	}

	var req CancelRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), actor, orderID, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// RefundOrder refunds an order fully or partially.
func (h *OrderHandler) RefundOrder(c echo.Context) error {
	actor, orderID, err := h.actorAndOrder(c)
	if err != nil {
		return err
	}

	var req RefundRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.RefundOrder(c.Request().Context(), actor, orderID, &usecase.RefundInput{
		Amount: req.Amount,
		Reason: req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ChangeOrderStatus moves an order through the lifecycle.
func (h *OrderHandler) ChangeOrderStatus(c echo.Context) error {
	actor, orderID, err := h.actorAndOrder(c)
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.ChangeOrderStatus(c.Request().Context(), actor, orderID, &usecase.ChangeStatusInput{
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderNotes replaces the internal notes of an order.
func (h *OrderHandler) UpdateOrderNotes(c echo.Context) error {
	actor, orderID, err := h.actorAndOrder(c)
	if err != nil {
		return err
	}

	var req InternalNotesRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderNotes(c.Request().Context(), actor, orderID, req.Internal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) actorAndOrder(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	actor, err := actorID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return actor, orderID, nil
}
