package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/orderflow"
	"orderguard/internal/domain/policy"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultOrderPageSize = 50
	maxOrderPageSize     = 200
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	auth        *PurchaseAuthorizer
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Authorizer  *PurchaseAuthorizer
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		auth:        params.Authorizer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the actor's own orders, or any customer's orders for administrative roles.
func (srv *orderService) ListOrders(ctx context.Context, actorID uuid.UUID, input *usecase.ListOrdersInput) ([]*usecase.OrderView, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	check := Check{Action: entity.ActionView}
	if actor.Role.IsAdministrative() {
		check.Resources = []entity.Resource{entity.ResourceAllOrders, entity.ResourceCustomerOrders}
	} else {
		check.Resources = []entity.Resource{entity.ResourceOwnOrders}
	}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, err
	}

	limit, offset := defaultOrderPageSize, 0
	if input != nil {
		if input.Limit > 0 {
			limit = min(input.Limit, maxOrderPageSize)
		}
		offset = max(input.Offset, 0)
	}

	var orders []*entity.Order
	switch {
	case !actor.Role.IsAdministrative():
		orders, err = srv.orderRepo.FindByCustomer(ctx, actor.ID, limit, offset)
	case input != nil && input.CustomerID != nil:
		orders, err = srv.orderRepo.FindByCustomer(ctx, *input.CustomerID, limit, offset)
	default:
		orders, err = srv.orderRepo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, usecase.OrderViewFor(order, actor.Role))
	}

	return views, nil
}

// GetOrder returns one order, public or detailed depending on the actor's role.
func (srv *orderService) GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*usecase.OrderView, error) {
	actor, order, _, err := srv.authorizeOrder(ctx, actorID, orderID, entity.ActionView,
		entity.ResourceOwnOrders, entity.ResourceAllOrders, entity.ResourceCustomerOrders)
	if err != nil {
		return nil, err
	}

	return usecase.OrderViewFor(order, actor.Role), nil
}

// CreateOrder prices the requested lines from the catalog and places a pending order.
func (srv *orderService) CreateOrder(ctx context.Context, actorID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	check := Check{Action: entity.ActionCreate, Resources: []entity.Resource{entity.ResourceOrders}, Purchase: true}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var placeErr error
		order, placeErr = srv.placeOrder(ctx, repoFactory, actor, input.Items, checkoutDetails{
			PaymentMethod:  input.PaymentMethod,
			ShippingMethod: input.ShippingMethod,
			ShippingCost:   input.ShippingCost,
			Notes:          input.Notes,
		})

		return placeErr
	})
	if err := srv.auth.Finish(ctx, actor, check, orderIDOf(order), err); err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Any("actor_id", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}
	srv.log(ctx).Info("Order created",
		slog.Any("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.Pricing.Total.String()),
	)

	return usecase.OrderViewFor(order, actor.Role), nil
}

// Checkout places an order from the actor's cart and empties the cart in the same transaction.
func (srv *orderService) Checkout(ctx context.Context, actorID uuid.UUID, input *usecase.CheckoutInput) (*usecase.OrderView, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cartOwnership := policy.CartOwnership(actor.ID)
	check := Check{
		Action:    entity.ActionCreate,
		Resources: []entity.Resource{entity.ResourceOrders},
		Purchase:  true,
		Ownership: &cartOwnership,
	}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByOwner(ctx, actor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrValidationFailed.WithDetails("cart is empty")
		}

		lines := make([]usecase.OrderLineInput, 0, len(cart.Items))
		for _, item := range cart.Items {
			lines = append(lines, usecase.OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
		}

		order, err = srv.placeOrder(ctx, repoFactory, actor, lines, checkoutDetails(*input))
		if err != nil {
			return err
		}

		return errors.Wrap(cartRepo.Clear(ctx, actor.ID), "failed to clear cart")
	})
	if err := srv.auth.Finish(ctx, actor, check, orderIDOf(order), err); err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("actor_id", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check out cart")
	}
	srv.log(ctx).Info("Cart checked out", slog.Any("order_id", order.ID), slog.String("order_number", order.OrderNumber))

	return usecase.OrderViewFor(order, actor.Role), nil
}

// checkoutDetails are the order fields that do not come from the catalog.
type checkoutDetails usecase.CheckoutInput

// placeOrder resolves the products, builds the order, takes the stock and
// stores the order. It must run inside a transaction.
func (srv *orderService) placeOrder(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	actor *entity.User,
	requested []usecase.OrderLineInput,
	details checkoutDetails,
) (*entity.Order, error) {
	productRepo := repoFactory.ProductRepo()

	ids := make([]uuid.UUID, 0, len(requested))
	for _, line := range requested {
		ids = append(ids, line.ProductID)
	}
	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	lines := make([]orderflow.Line, 0, len(requested))
	for _, line := range requested {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, domainerrors.NewResourceNotFound("product", line.ProductID.String())
		}
		lines = append(lines, orderflow.Line{Product: product, Quantity: line.Quantity})
	}

	client := deliverycontext.GetClientInfo(ctx)
	order, err := srv.auth.orders.Create(orderflow.NewOrder{
		Lines:          lines,
		PaymentMethod:  details.PaymentMethod,
		ShippingMethod: details.ShippingMethod,
		ShippingCost:   details.ShippingCost,
		Notes:          details.Notes,
		Currency:       srv.auth.currency,
		Wholesale:      srv.auth.Limits(actor).CanSeeWholesalePrices,
		IPAddress:      client.IPAddress,
		UserAgent:      client.UserAgent,
	}, actor, srv.auth.Now())
	if err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrStockUnavailable) {
				return nil, domainerrors.ErrInsufficientStock.WithDetails("product " + item.ProductID.String())
			}

			return nil, errors.Wrap(err, "failed to reserve stock")
		}
	}

	if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to store order")
	}

	return order, nil
}

// CancelOrder cancels an order and puts its units back in stock.
func (srv *orderService) CancelOrder(ctx context.Context, actorID, orderID uuid.UUID, reason string) (*usecase.OrderView, error) {
	actor, order, check, err := srv.authorizeOrder(ctx, actorID, orderID, entity.ActionUpdate,
		entity.ResourceOwnOrders, entity.ResourceAllOrders, entity.ResourceCustomerOrders)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = "cancelled by user"
	}

	next, err := srv.auth.orders.Cancel(order, actor, reason, srv.auth.Now())
	if err == nil {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := saveOrder(ctx, repoFactory.OrderRepo(), next, order.Version); err != nil {
				return err
			}

			return restock(ctx, repoFactory.ProductRepo(), next.Items)
		})
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}
	srv.log(ctx).Info("Order cancelled", slog.Any("order_id", order.ID), slog.Any("actor_id", actor.ID))

	return usecase.OrderViewFor(next, actor.Role), nil
}

// RefundOrder refunds all or part of a paid order.
func (srv *orderService) RefundOrder(ctx context.Context, actorID, orderID uuid.UUID, input *usecase.RefundInput) (*usecase.OrderView, error) {
	actor, order, check, err := srv.authorizeOrder(ctx, actorID, orderID, entity.ActionSpecial,
		entity.ResourceRefundProcessing)
	if err != nil {
		return nil, err
	}
	if err := srv.auth.CheckFlag(ctx, actor, check, policy.LimitRefundProcessing); err != nil {
		return nil, err
	}

	next, err := srv.auth.orders.ProcessRefund(order, actor, input.Amount, input.Reason, srv.auth.Now())
	if err == nil {
		err = saveOrder(ctx, srv.orderRepo, next, order.Version)
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to refund order")
	}
	srv.log(ctx).Info("Order refunded",
		slog.Any("order_id", order.ID),
		slog.String("amount", next.Payment.RefundAmount.String()),
	)

	return usecase.OrderViewFor(next, actor.Role), nil
}

// ChangeOrderStatus moves an order to another status. Reaching delivered
// records the purchase on the customer, which may promote their role.
func (srv *orderService) ChangeOrderStatus(
	ctx context.Context, actorID, orderID uuid.UUID, input *usecase.ChangeStatusInput,
) (*usecase.OrderView, error) {
	actor, order, check, err := srv.authorizeOrder(ctx, actorID, orderID, entity.ActionUpdate, entity.ResourceAllOrders)
	if err != nil {
		return nil, err
	}

	now := srv.auth.Now()
	next, err := srv.auth.orders.ChangeStatus(order, actor, input.Status, input.Reason, now)
	if err == nil {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := saveOrder(ctx, repoFactory.OrderRepo(), next, order.Version); err != nil {
				return err
			}

			switch next.Status {
			case entity.OrderStatusCancelled:
				return restock(ctx, repoFactory.ProductRepo(), next.Items)
			case entity.OrderStatusDelivered:
				return srv.recordPurchase(ctx, repoFactory.UserRepo(), next, now)
			default:
				return nil
			}
		})
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to change order status")
	}
	srv.log(ctx).Info("Order status changed",
		slog.Any("order_id", order.ID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(next.Status)),
	)

	return usecase.OrderViewFor(next, actor.Role), nil
}

// recordPurchase adds a delivered order to the customer's history with the
// user row locked, so concurrent deliveries cannot lose an update.
func (srv *orderService) recordPurchase(ctx context.Context, userRepo repository.UserRepository, order *entity.Order, at time.Time) error {
	customer, err := userRepo.FindByIDForUpdate(ctx, order.CustomerID)
	if err != nil {
		return errors.Wrap(err, "failed to lock customer")
	}

	previous := customer.RecordPurchase(order.Pricing.Total, at, srv.auth.escalation)
	if err := userRepo.Update(ctx, customer); err != nil {
		return errors.Wrap(err, "failed to record purchase")
	}

	if previous != customer.Role {
		srv.log(ctx).Info("Customer role escalated",
			slog.Any("user_id", customer.ID),
			slog.String("from", previous.String()),
			slog.String("to", customer.Role.String()),
			slog.String("total_spent", customer.PurchaseHistory.TotalSpent.String()),
		)
	}

	return nil
}

// UpdateOrderNotes replaces the internal notes of an order.
func (srv *orderService) UpdateOrderNotes(ctx context.Context, actorID, orderID uuid.UUID, internal string) (*usecase.OrderView, error) {
	actor, order, check, err := srv.authorizeOrder(ctx, actorID, orderID, entity.ActionUpdate,
		entity.ResourceAllOrders, entity.ResourceCustomerOrders)
	if err != nil {
		return nil, err
	}

	next, err := srv.auth.orders.UpdateInternalNotes(order, actor, internal, srv.auth.Now())
	if err == nil {
		err = saveOrder(ctx, srv.orderRepo, next, order.Version)
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to update order notes")
	}

	return usecase.OrderViewFor(next, actor.Role), nil
}

// authorizeOrder resolves the actor, runs the account gate, loads the order
// and checks permission and ownership. Non-administrative roles only ever
// hold own_orders, so the ownership guard decides whether the order is theirs.
func (srv *orderService) authorizeOrder(
	ctx context.Context, actorID, orderID uuid.UUID, action entity.Action, resources ...entity.Resource,
) (*entity.User, *entity.Order, Check, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, nil, Check{}, err
	}

	check := Check{Action: action, Resources: resources, ResourceID: orderID.String()}
	if err := srv.auth.Admit(ctx, actor, check); err != nil {
		return nil, nil, check, err
	}

	order, err := loadOrder(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, nil, check, err
	}

	ownership := policy.OrderOwnership(order)
	check.Ownership = &ownership
	granted, err := srv.auth.Permit(ctx, actor, check)
	if err != nil {
		return nil, nil, check, err
	}
	check.Resources = []entity.Resource{granted}

	return actor, order, check, nil
}

func loadOrder(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.NewResourceNotFound("order", orderID.String())
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// saveOrder writes next if the stored order is still at expectedVersion.
func saveOrder(ctx context.Context, orderRepo repository.OrderRepository, next *entity.Order, expectedVersion int) error {
	if err := orderRepo.Update(ctx, next, expectedVersion); err != nil {
		if errors.Is(err, repository.ErrOrderVersionConflict) {
			return domainerrors.ErrConcurrentModification
		}

		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func restock(ctx context.Context, productRepo repository.ProductRepository, items []entity.OrderItem) error {
	for _, item := range items {
		if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return errors.Wrap(err, "failed to restore stock")
		}
	}

	return nil
}

func orderIDOf(order *entity.Order) string {
	if order == nil {
		return ""
	}

	return order.ID.String()
}
