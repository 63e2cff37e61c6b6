package impl

import (
	"context"
	"testing"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	mockRepo "orderguard/internal/mocks/repository"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	audit       *auditTrail
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	auth, trail := newTestAuthorizer(t, userRepo)

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Authorizer:  auth,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		audit:       trail,
	}
}

func newCreateOrderInput(productID uuid.UUID, quantity int) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items:          []usecase.OrderLineInput{{ProductID: productID, Quantity: quantity}},
		PaymentMethod:  entity.PaymentMethodCreditCard,
		ShippingMethod: entity.ShippingMethodStandard,
		ShippingCost:   decimal.Zero,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	product := newTestProduct("100", 10)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().ProductRepo().Return(fx.productRepo)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(nil)

	var stored *entity.Order
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			stored = order
		}).
		Return(nil)

	view, err := fx.service.CreateOrder(ctx, actor.ID, newCreateOrderInput(product.ID, 2))

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, view.ID)
	assert.Equal(t, entity.OrderStatusPending, view.Status)
	assert.Equal(t, actor.ID, view.CustomerID)
	assert.True(t, dec("200").Equal(view.Pricing.Total))
	assert.Nil(t, view.Authorization, "customers get the public view")
	assert.Nil(t, view.Audit)

	require.Len(t, fx.audit.events, 1)
	assert.Equal(t, entity.AuditOutcomeGranted, fx.audit.last().Outcome)
	assert.Equal(t, entity.ResourceOrders, fx.audit.last().Resource)
	assert.Equal(t, stored.ID.String(), fx.audit.last().ResourceID)
}

func TestOrderService_CreateOrder_QuantityLimitDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	product := newTestProduct("10", 100)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)

	view, err := fx.service.CreateOrder(ctx, actor.ID, newCreateOrderInput(product.ID, 11))

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)

	denial, ok := domainerrors.AsDenial(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.GateLimit, denial.Gate())

	require.Len(t, fx.audit.events, 1)
	assert.Equal(t, entity.AuditOutcomeDenied, fx.audit.last().Outcome)
	assert.Equal(t, string(domainerrors.GateLimit), fx.audit.last().Gate)
}

func TestOrderService_CreateOrder_UnverifiedEmail(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	actor.EmailVerified = false

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	view, err := fx.service.CreateOrder(ctx, actor.ID, newCreateOrderInput(uuid.New(), 1))

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrEmailUnverified)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, fx.audit.outcomes())
	assert.Equal(t, string(domainerrors.GateAccount), fx.audit.last().Gate)
}

func TestOrderService_CreateOrder_StockRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	product := newTestProduct("10", 5)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 5).Return(repository.ErrStockUnavailable)

	_, err := fx.service.CreateOrder(ctx, actor.ID, newCreateOrderInput(product.ID, 5))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeFailed}, fx.audit.outcomes())
}

func TestOrderService_CreateOrder_UnknownActor(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actorID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, actorID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateOrder(ctx, actorID, newCreateOrderInput(uuid.New(), 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, fx.audit.outcomes())
}

func TestOrderService_GetOrder_OtherCustomersOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	order := newTestOrder(uuid.New(), entity.OrderStatusPending, "50")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	view, err := fx.service.GetOrder(ctx, actor.ID, order.ID)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
	assert.Equal(t, string(domainerrors.GateOwnership), fx.audit.last().Gate)
}

func TestOrderService_GetOrder_ViewByRole(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		owned    bool
		detailed bool
	}{
		{name: "customer owner gets public view", role: entity.RoleCustomer, owned: true, detailed: false},
		{name: "premium owner gets detailed view", role: entity.RolePremium, owned: true, detailed: true},
		{name: "manager gets detailed view of any order", role: entity.RoleManager, owned: false, detailed: true},
		{name: "support gets detailed view of customer orders", role: entity.RoleSupport, owned: false, detailed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			actor := newTestUser(tt.role)
			customerID := uuid.New()
			if tt.owned {
				customerID = actor.ID
			}
			order := newTestOrder(customerID, entity.OrderStatusPending, "50")

			fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			view, err := fx.service.GetOrder(ctx, actor.ID, order.ID)

			require.NoError(t, err)
			assert.Equal(t, order.ID, view.ID)
			if tt.detailed {
				require.NotNil(t, view.Authorization)
				require.NotNil(t, view.Notes)
				assert.Equal(t, "vip handling", view.Notes.Internal)
				assert.Equal(t, order.Version, view.Version)
			} else {
				assert.Nil(t, view.Authorization)
				assert.Nil(t, view.Audit)
				require.NotNil(t, view.Notes)
				assert.Empty(t, view.Notes.Internal)
			}
			assert.Empty(t, fx.audit.events, "reads are not audited")
		})
	}
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleManager)
	orderID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, actor.ID, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestOrderService_ListOrders_CustomerSeesOnlyOwn(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	someoneElse := uuid.New()
	order := newTestOrder(actor.ID, entity.OrderStatusPaid, "80")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByCustomer(ctx, actor.ID, 50, 0).Return([]*entity.Order{order}, nil)

	views, err := fx.service.ListOrders(ctx, actor.ID, &usecase.ListOrdersInput{CustomerID: &someoneElse})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, order.ID, views[0].ID)
}

func TestOrderService_ListOrders_Pagination(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name   string
		role   entity.Role
		input  *usecase.ListOrdersInput
		expect func(fx orderServiceFixtures, actor *entity.User)
	}{
		{
			name:  "manager page clamped",
			role:  entity.RoleManager,
			input: &usecase.ListOrdersInput{Limit: 500, Offset: 10},
			expect: func(fx orderServiceFixtures, _ *entity.User) {
				fx.orderRepo.EXPECT().List(mock.Anything, 200, 10).Return([]*entity.Order{}, nil)
			},
		},
		{
			name:  "manager filtered by customer",
			role:  entity.RoleManager,
			input: &usecase.ListOrdersInput{CustomerID: &customerID, Limit: 20, Offset: 40},
			expect: func(fx orderServiceFixtures, _ *entity.User) {
				fx.orderRepo.EXPECT().FindByCustomer(mock.Anything, customerID, 20, 40).Return([]*entity.Order{}, nil)
			},
		},
		{
			name:  "customer page clamped",
			role:  entity.RoleCustomer,
			input: &usecase.ListOrdersInput{Limit: 1000, Offset: 5},
			expect: func(fx orderServiceFixtures, actor *entity.User) {
				fx.orderRepo.EXPECT().FindByCustomer(mock.Anything, actor.ID, 200, 5).Return([]*entity.Order{}, nil)
			},
		},
		{
			name:  "customer default page",
			role:  entity.RolePremium,
			input: nil,
			expect: func(fx orderServiceFixtures, actor *entity.User) {
				fx.orderRepo.EXPECT().FindByCustomer(mock.Anything, actor.ID, 50, 0).Return([]*entity.Order{}, nil)
			},
		},
		{
			name:  "negative offset treated as zero",
			role:  entity.RoleSeller,
			input: &usecase.ListOrdersInput{Offset: -3},
			expect: func(fx orderServiceFixtures, actor *entity.User) {
				fx.orderRepo.EXPECT().FindByCustomer(mock.Anything, actor.ID, 50, 0).Return([]*entity.Order{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			actor := newTestUser(tt.role)
			fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			tt.expect(fx, actor)

			views, err := fx.service.ListOrders(ctx, actor.ID, tt.input)

			require.NoError(t, err)
			assert.Empty(t, views)
		})
	}
}

func TestOrderService_CancelOrder_RestoresStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	order := newTestOrder(actor.ID, entity.OrderStatusPending, "40")
	item := order.Items[0]

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order"), order.Version).Return(nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, item.ProductID, item.Quantity).Return(nil)

	view, err := fx.service.CancelOrder(ctx, actor.ID, order.ID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, view.Status)
	assert.Equal(t, entity.OrderStatusPending, order.Status, "the loaded order is not modified")
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeGranted}, fx.audit.outcomes())
}

func TestOrderService_CancelOrder_ConcurrentModification(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	order := newTestOrder(actor.ID, entity.OrderStatusPaid, "40")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order"), order.Version).
		Return(repository.ErrOrderVersionConflict)

	_, err := fx.service.CancelOrder(ctx, actor.ID, order.ID, "changed my mind")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeFailed}, fx.audit.outcomes())
}

func TestOrderService_CancelOrder_ShippedByCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	order := newTestOrder(actor.ID, entity.OrderStatusShipped, "40")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, actor.ID, order.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_RefundOrder_CustomerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	order := newTestOrder(actor.ID, entity.OrderStatusPaid, "40")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.RefundOrder(ctx, actor.ID, order.ID, &usecase.RefundInput{Reason: "broken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Equal(t, string(domainerrors.GatePermission), fx.audit.last().Gate)
}

func TestOrderService_RefundOrder_PartialByManager(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleManager)
	order := newTestOrder(uuid.New(), entity.OrderStatusPaid, "40")
	order.Payment.Status = entity.PaymentStatusCompleted
	amount := dec("15")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order"), order.Version).Return(nil)

	view, err := fx.service.RefundOrder(ctx, actor.ID, order.ID, &usecase.RefundInput{Amount: &amount, Reason: "damaged"})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRefunded, view.Status)
	require.NotNil(t, view.Payment.RefundAmount)
	assert.True(t, amount.Equal(*view.Payment.RefundAmount))
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeGranted}, fx.audit.outcomes())
}

func TestOrderService_ChangeOrderStatus_DeliveredEscalatesCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleManager)
	customer := newTestUser(entity.RoleCustomer)
	order := newTestOrder(customer.ID, entity.OrderStatusShipped, "12000")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order"), order.Version).Return(nil)
	fx.userRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.userRepo.EXPECT().Update(ctx, customer).Return(nil)

	view, err := fx.service.ChangeOrderStatus(ctx, actor.ID, order.ID, &usecase.ChangeStatusInput{
		Status: entity.OrderStatusDelivered,
		Reason: "signed for",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, view.Status)
	assert.Equal(t, entity.RolePremium, customer.Role)
	assert.Equal(t, 1, customer.PurchaseHistory.TotalPurchases)
	assert.True(t, dec("12000").Equal(customer.PurchaseHistory.TotalSpent))
}

func TestOrderService_ChangeOrderStatus_TerminalOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleAdmin)
	order := newTestOrder(uuid.New(), entity.OrderStatusCancelled, "20")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.ChangeOrderStatus(ctx, actor.ID, order.ID, &usecase.ChangeStatusInput{Status: entity.OrderStatusPaid})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTerminalState)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, fx.audit.outcomes())
	assert.Equal(t, string(domainerrors.GateTransition), fx.audit.last().Gate)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	cartRepo := mockRepo.NewMockCartRepository(t)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().CartRepo().Return(cartRepo)
	cartRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(&entity.Cart{OwnerID: actor.ID}, nil)

	_, err := fx.service.Checkout(ctx, actor.ID, &usecase.CheckoutInput{
		PaymentMethod:  entity.PaymentMethodPaypal,
		ShippingMethod: entity.ShippingMethodExpress,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Checkout_ClearsCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)
	product := newTestProduct("100", 10)
	cartRepo := mockRepo.NewMockCartRepository(t)
	cart := &entity.Cart{
		OwnerID: actor.ID,
		Items:   []entity.CartItem{{ProductID: product.ID, Name: product.Name, Quantity: 3, UnitPrice: product.Price}},
	}

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	factory := expectTx(t, fx.txManager)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(fx.productRepo)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	cartRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{product.ID}).
		Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, product.ID, 3).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	cartRepo.EXPECT().Clear(ctx, actor.ID).Return(nil)

	view, err := fx.service.Checkout(ctx, actor.ID, &usecase.CheckoutInput{
		PaymentMethod:  entity.PaymentMethodPaypal,
		ShippingMethod: entity.ShippingMethodExpress,
		ShippingCost:   dec("5"),
	})

	require.NoError(t, err)
	// 300 subtotal, 5% premium discount, 5 shipping.
	assert.True(t, dec("290").Equal(view.Pricing.Total), "total was %s", view.Pricing.Total)
	require.NotNil(t, view.Authorization, "premium customers get the detailed view")
}
