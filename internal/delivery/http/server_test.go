package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderguard/config"
	httpmiddleware "orderguard/internal/delivery/http/middleware"
	"orderguard/internal/delivery/http/router"
	"orderguard/internal/delivery/http/router/handler"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/service"
	"orderguard/internal/errors"
	mockSvc "orderguard/internal/mocks/service"
	mockUsecase "orderguard/internal/mocks/usecase"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "access-token"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixture struct {
	e            *echo.Echo
	tokenSvc     *mockSvc.MockTokenService
	accountUC    *mockUsecase.MockAccountUsecase
	orderUC      *mockUsecase.MockOrderUsecase
	cartUC       *mockUsecase.MockCartUsecase
	wishlistUC   *mockUsecase.MockWishlistUsecase
	catalogUC    *mockUsecase.MockCatalogUsecase
	couponUC     *mockUsecase.MockCouponUsecase
	permissionUC *mockUsecase.MockPermissionUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	f := &apiFixture{
		tokenSvc:     mockSvc.NewMockTokenService(t),
		accountUC:    mockUsecase.NewMockAccountUsecase(t),
		orderUC:      mockUsecase.NewMockOrderUsecase(t),
		cartUC:       mockUsecase.NewMockCartUsecase(t),
		wishlistUC:   mockUsecase.NewMockWishlistUsecase(t),
		catalogUC:    mockUsecase.NewMockCatalogUsecase(t),
		couponUC:     mockUsecase.NewMockCouponUsecase(t),
		permissionUC: mockUsecase.NewMockPermissionUsecase(t),
	}

	f.e = NewEcho(cfg, logger, httpmiddleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: f.accountUC, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.orderUC, Logger: logger}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC: f.cartUC, WishlistUC: f.wishlistUC, Logger: logger,
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: f.catalogUC, CouponUC: f.couponUC, PermissionUC: f.permissionUC, Logger: logger,
		}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(f.tokenSvc),
	}).RegisterRoutes(f.e)

	return f
}

// signIn makes testAccessToken resolve to actor.
func (f *apiFixture) signIn(actor uuid.UUID) {
	f.tokenSvc.EXPECT().ValidateToken(testAccessToken).
		Return(&service.Claims{UserID: actor, Role: "customer", Type: service.TokenTypeAccess}, nil)
}

func (f *apiFixture) do(t *testing.T, method, path, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func denialDetails(t *testing.T, env envelope) map[string]string {
	t.Helper()
	require.NotNil(t, env.Error)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))

	return details
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, "req-123", env.Meta.RequestID)
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", env.Error.Code)
	details := denialDetails(t, env)
	assert.Equal(t, "account", details["gate"])
	assert.Equal(t, "missing authorization header", details["current"])
	assert.Equal(t, "req-123", env.Meta.RequestID)
}

func TestAPI_RejectsRefreshTokenAsBearer(t *testing.T) {
	f := newAPIFixture(t)
	f.tokenSvc.EXPECT().ValidateToken(testAccessToken).
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/permissions", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "refresh token", denialDetails(t, env)["current"])
}

func TestAPI_InvalidToken(t *testing.T) {
	f := newAPIFixture(t)
	f.tokenSvc.EXPECT().ValidateToken(testAccessToken).Return(nil, errors.New("token expired"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/cart", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", denialDetails(t, env)["current"])
}

func TestListOrders_PassesPaginationAndCustomerFilter(t *testing.T) {
	f := newAPIFixture(t)
	actor, customer := uuid.New(), uuid.New()
	f.signIn(actor)
	f.orderUC.EXPECT().
		ListOrders(mock.Anything, actor, mock.MatchedBy(func(in *usecase.ListOrdersInput) bool {
			return in.Limit == 20 && in.Offset == 40 && in.CustomerID != nil && *in.CustomerID == customer
		})).
		Return([]*usecase.OrderView{{ID: uuid.New(), CustomerID: customer}}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders?limit=20&offset=40&customerId="+customer.String(), "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, customer.String(), orders[0]["customerId"])
}

func TestListOrders_BadPagination(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(uuid.New())

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders?limit=many", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestGetOrder_InvalidID(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(uuid.New())

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `"invalid orderId"`, string(env.Error.Details))
}

func TestGetOrder_OwnershipDenial(t *testing.T) {
	f := newAPIFixture(t)
	actor, orderID := uuid.New(), uuid.New()
	f.signIn(actor)
	f.orderUC.EXPECT().GetOrder(mock.Anything, actor, orderID).
		Return(nil, domainerrors.NewOwnershipViolation("order", orderID.String(), "customer"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), "", true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "OWNERSHIP_VIOLATION", env.Error.Code)
	details := denialDetails(t, env)
	assert.Equal(t, "ownership", details["gate"])
	assert.Equal(t, "owner of order or administrative role", details["required"])
	assert.Equal(t, "role customer", details["current"])
}

func TestCreateOrder(t *testing.T) {
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newAPIFixture(t)
		actor := uuid.New()
		f.signIn(actor)
		f.orderUC.EXPECT().
			CreateOrder(mock.Anything, actor, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
				return len(in.Items) == 1 &&
					in.Items[0].ProductID == productID &&
					in.Items[0].Quantity == 2 &&
					in.PaymentMethod == entity.PaymentMethodCreditCard &&
					in.ShippingMethod == entity.ShippingMethodExpress &&
					in.ShippingCost.Equal(decimal.NewFromInt(15)) &&
					in.Notes.Customer == "leave at door" &&
					in.Notes.Internal == ""
			})).
			Return(&usecase.OrderView{ID: uuid.New(), CustomerID: actor, CreatedAt: time.Now()}, nil)

		body := `{"items":[{"productId":"` + productID.String() + `","quantity":2}],` +
			`"paymentMethod":"credit_card","shippingMethod":"express","shippingCost":"15",` +
			`"notes":{"customer":"leave at door","internal":"skip fraud check"}}`
		rec, _ := f.do(t, http.MethodPost, "/api/v1/orders", body, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty items fail validation", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn(uuid.New())

		body := `{"items":[],"paymentMethod":"credit_card","shippingMethod":"standard"}`
		rec, env := f.do(t, http.MethodPost, "/api/v1/orders", body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		var fields []map[string]string
		require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		require.Len(t, fields, 1)
		assert.Equal(t, "items", fields[0]["field"])
		assert.Equal(t, "min", fields[0]["rule"])
	})

	t.Run("unknown payment method", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn(uuid.New())

		body := `{"items":[{"productId":"` + productID.String() + `","quantity":1}],` +
			`"paymentMethod":"barter","shippingMethod":"standard"}`
		rec, env := f.do(t, http.MethodPost, "/api/v1/orders", body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fields []map[string]string
		require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		require.Len(t, fields, 1)
		assert.Equal(t, "paymentMethod", fields[0]["field"])
		assert.Equal(t, "oneof", fields[0]["rule"])
	})

	t.Run("negative shipping cost", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn(uuid.New())

		body := `{"items":[{"productId":"` + productID.String() + `","quantity":1}],` +
			`"paymentMethod":"cash","shippingMethod":"pickup","shippingCost":"-1"}`
		rec, env := f.do(t, http.MethodPost, "/api/v1/orders", body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `"shippingCost must not be negative"`, string(env.Error.Details))
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPIFixture(t)
		f.signIn(uuid.New())

		rec, env := f.do(t, http.MethodPost, "/api/v1/orders", `{"items":`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `"malformed request body"`, string(env.Error.Details))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		f := newAPIFixture(t)
		actor := uuid.New()
		f.signIn(actor)
		f.orderUC.EXPECT().CreateOrder(mock.Anything, actor, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.NewLimitExceeded("order_value", "50000", "60000", "customer")))

		body := `{"items":[{"productId":"` + productID.String() + `","quantity":1}],` +
			`"paymentMethod":"cash","shippingMethod":"pickup"}`
		rec, env := f.do(t, http.MethodPost, "/api/v1/orders", body, true)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "LIMIT_EXCEEDED", env.Error.Code)
		details := denialDetails(t, env)
		assert.Equal(t, "limit", details["gate"])
		assert.Equal(t, "order_value <= 50000", details["required"])
		assert.Equal(t, "60000", details["current"])
	})
}

func TestRefundOrder_PartialAmount(t *testing.T) {
	f := newAPIFixture(t)
	actor, orderID := uuid.New(), uuid.New()
	f.signIn(actor)
	f.orderUC.EXPECT().
		RefundOrder(mock.Anything, actor, orderID, mock.MatchedBy(func(in *usecase.RefundInput) bool {
			return in.Amount != nil && in.Amount.Equal(decimal.RequireFromString("12.50")) && in.Reason == "damaged"
		})).
		Return(&usecase.OrderView{ID: orderID}, nil)

	rec, _ := f.do(t, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/refund",
		`{"amount":"12.50","reason":"damaged"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangeOrderStatus_InvalidTransition(t *testing.T) {
	f := newAPIFixture(t)
	actor, orderID := uuid.New(), uuid.New()
	f.signIn(actor)
	f.orderUC.EXPECT().ChangeOrderStatus(mock.Anything, actor, orderID, mock.Anything).
		Return(nil, domainerrors.NewInvalidTransition("delivered", "pending"))

	rec, env := f.do(t, http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status", `{"status":"pending"}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
	assert.JSONEq(t, `"cannot move order from delivered to pending"`, string(env.Error.Details))
}

func TestCart_DefaultsToCaller(t *testing.T) {
	f := newAPIFixture(t)
	actor := uuid.New()
	f.signIn(actor)
	f.cartUC.EXPECT().GetCart(mock.Anything, actor, actor).
		Return(&usecase.CartView{OwnerID: actor, Items: []entity.CartItem{}, Total: decimal.Zero}, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/cart", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCart_AddressesOtherUser(t *testing.T) {
	f := newAPIFixture(t)
	actor, owner, productID := uuid.New(), uuid.New(), uuid.New()
	f.signIn(actor)
	f.cartUC.EXPECT().
		UpdateCartItem(mock.Anything, actor, owner, &usecase.CartItemInput{ProductID: productID, Quantity: 3}).
		Return(&usecase.CartView{OwnerID: owner}, nil)

	rec, _ := f.do(t, http.MethodPut, "/api/v1/cart/items/"+productID.String()+"?userId="+owner.String(),
		`{"quantity":3}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearCart_NoContent(t *testing.T) {
	f := newAPIFixture(t)
	actor := uuid.New()
	f.signIn(actor)
	f.cartUC.EXPECT().ClearCart(mock.Anything, actor, actor).Return(nil)

	rec, _ := f.do(t, http.MethodDelete, "/api/v1/cart", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWishlist_PermissionDenied(t *testing.T) {
	f := newAPIFixture(t)
	actor := uuid.New()
	f.signIn(actor)
	f.wishlistUC.EXPECT().GetWishlist(mock.Anything, actor, actor).
		Return(nil, domainerrors.NewPermissionDenied("view", []string{"wishlist"}, "customer"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/wishlist", "", true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	details := denialDetails(t, env)
	assert.Equal(t, "permission", details["gate"])
	assert.Equal(t, "view:wishlist", details["required"])
}

func TestRestockProduct_HidesStoreFailureDetails(t *testing.T) {
	f := newAPIFixture(t)
	actor, productID := uuid.New(), uuid.New()
	f.signIn(actor)
	f.catalogUC.EXPECT().
		RestockProduct(mock.Anything, actor, productID, &usecase.RestockInput{Quantity: 5}).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "increment stock"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/products/"+productID.String()+"/restock", `{"quantity":5}`, true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestApplyCoupon(t *testing.T) {
	f := newAPIFixture(t)
	actor, orderID := uuid.New(), uuid.New()
	f.signIn(actor)
	f.couponUC.EXPECT().
		ApplyCoupon(mock.Anything, actor, &usecase.ApplyCouponInput{CouponCode: "SAVE10", OrderID: orderID}).
		Return(&usecase.OrderView{ID: orderID}, nil)

	rec, _ := f.do(t, http.MethodPost, "/api/v1/coupons/apply",
		`{"couponCode":"SAVE10","orderId":"`+orderID.String()+`"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProductQuote(t *testing.T) {
	f := newAPIFixture(t)
	actor, productID := uuid.New(), uuid.New()
	f.signIn(actor)
	f.catalogUC.EXPECT().GetProductQuote(mock.Anything, actor, productID).
		Return(&usecase.ProductQuote{ProductID: productID, Price: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(70)}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/products/"+productID.String()+"/quote", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	var quote usecase.ProductQuote
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.True(t, quote.UnitPrice.Equal(decimal.NewFromInt(70)))
}

func TestUnhandledErrorIsGeneric(t *testing.T) {
	f := newAPIFixture(t)
	actor := uuid.New()
	f.signIn(actor)
	f.permissionUC.EXPECT().GetPermissions(mock.Anything, actor).Return(nil, errors.New("boom"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/permissions", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRegister_OmitsCredentials(t *testing.T) {
	f := newAPIFixture(t)
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         entity.RoleCustomer,
	}
	f.accountUC.EXPECT().
		RegisterUser(mock.Anything, &usecase.RegisterUserInput{Name: "Ada", Email: "ada@example.com", Password: "S3cure!pass"}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/register",
		`{"name":"Ada","email":"ada@example.com","password":"S3cure!pass"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, string(env.Data), "secret")
	assert.Contains(t, string(env.Data), `"email":"ada@example.com"`)
}

func TestLogin_InvalidCredentialsHasNoDetails(t *testing.T) {
	f := newAPIFixture(t)
	f.accountUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("no such email"))

	rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"x@example.com","password":"pw"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestSetAccountStatus(t *testing.T) {
	f := newAPIFixture(t)
	actor, target := uuid.New(), uuid.New()
	f.signIn(actor)
	f.accountUC.EXPECT().
		SetAccountStatus(mock.Anything, actor, &usecase.SetAccountStatusInput{UserID: target, Status: entity.AccountStatusSuspended}).
		Return(&entity.User{ID: target, Status: entity.AccountStatusSuspended}, nil)

	rec, _ := f.do(t, http.MethodPut, "/api/v1/admin/users/"+target.String()+"/status", `{"status":"suspended"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/nope", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
