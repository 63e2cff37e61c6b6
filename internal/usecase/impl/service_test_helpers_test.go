package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderguard/config"
	"orderguard/internal/domain/entity"
	"orderguard/internal/domain/orderflow"
	"orderguard/internal/domain/repository"
	mockRepo "orderguard/internal/mocks/repository"
	mockSvc "orderguard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       12,
			MaxLoginAttempts: 3,
			LockoutDuration:  time.Hour,
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// auditTrail collects the events handed to the recorder.
type auditTrail struct {
	events []*entity.AuditEvent
}

func (a *auditTrail) outcomes() []entity.AuditOutcome {
	outcomes := make([]entity.AuditOutcome, len(a.events))
	for i, event := range a.events {
		outcomes[i] = event.Outcome
	}

	return outcomes
}

func (a *auditTrail) last() *entity.AuditEvent {
	if len(a.events) == 0 {
		return nil
	}

	return a.events[len(a.events)-1]
}

func newTestAuthorizer(t *testing.T, userRepo repository.UserRepository) (*PurchaseAuthorizer, *auditTrail) {
	trail := &auditTrail{}
	recorder := mockSvc.NewMockAuditRecorder(t)
	recorder.EXPECT().
		Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *entity.AuditEvent) {
			trail.events = append(trail.events, event)
		}).
		Maybe()

	auth := NewPurchaseAuthorizer(PurchaseAuthorizerParams{
		UserRepo: userRepo,
		Recorder: recorder,
		Logger:   newDiscardLogger(),
	})
	auth.now = func() time.Time { return testNow }

	return auth, trail
}

// expectTx makes the transaction manager run its callback once against a
// fresh repository factory.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	return factory
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Name:          "Test User",
		Email:         string(role) + "@example.com",
		PasswordHash:  "hashed_password",
		Role:          role,
		Status:        entity.AccountStatusActive,
		EmailVerified: true,
		PurchaseHistory: entity.PurchaseHistory{
			TotalSpent:        decimal.Zero,
			AverageOrderValue: decimal.Zero,
		},
		CreatedAt: testNow.Add(-24 * time.Hour),
		UpdatedAt: testNow.Add(-24 * time.Hour),
	}
}

func newTestProduct(price string, stock int) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "Widget",
		Price:    dec(price),
		Stock:    stock,
		IsActive: true,
	}
}

func newTestOrder(customerID uuid.UUID, status entity.OrderStatus, total string) *entity.Order {
	amount := dec(total)

	return &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260314-0042",
		CustomerID:  customerID,
		Status:      status,
		Items: []entity.OrderItem{{
			ProductID: uuid.New(),
			Name:      "Widget",
			UnitPrice: amount,
			Quantity:  2,
			Subtotal:  amount,
			Discount:  decimal.Zero,
			Tax:       decimal.Zero,
		}},
		Pricing: entity.Pricing{
			Subtotal: amount,
			Tax:      decimal.Zero,
			Shipping: decimal.Zero,
			Discount: decimal.Zero,
			Total:    amount,
			Currency: orderflow.DefaultCurrency,
		},
		Payment: entity.Payment{
			Method:       entity.PaymentMethodCreditCard,
			Status:       entity.PaymentStatusPending,
			RefundAmount: decimal.Zero,
		},
		Shipping:      entity.Shipping{Method: entity.ShippingMethodStandard},
		Authorization: orderflow.DefaultAuthorization(),
		Notes:         entity.OrderNotes{Customer: "leave at the door", Internal: "vip handling"},
		Audit:         entity.OrderAudit{CreatedBy: customerID},
		Version:       3,
		CreatedAt:     testNow.Add(-time.Hour),
		UpdatedAt:     testNow.Add(-time.Hour),
	}
}
