package impl

import (
	"context"
	"testing"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	mockRepo "orderguard/internal/mocks/repository"
	"orderguard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	audit       *auditTrail
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	auth, trail := newTestAuthorizer(t, userRepo)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Authorizer:  auth,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		productRepo: productRepo,
		audit:       trail,
	}
}

func TestCatalogService_GetProductQuote_ByRole(t *testing.T) {
	tests := []struct {
		name          string
		role          entity.Role
		wantUnitPrice string
		wantDiscount  string
		wantWholesale bool
	}{
		{"customer pays list price", entity.RoleCustomer, "100", "0", false},
		{"vip pays list price", entity.RoleVIP, "100", "10", false},
		{"seller sees wholesale", entity.RoleSeller, "70", "15", true},
		{"manager sees wholesale", entity.RoleManager, "70", "20", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			ctx := context.Background()
			actor := newTestUser(tt.role)
			product := newTestProduct("100", 4)
			product.WholesalePrice = dec("70")

			fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			quote, err := fx.service.GetProductQuote(ctx, actor.ID, product.ID)

			require.NoError(t, err)
			assert.True(t, dec(tt.wantUnitPrice).Equal(quote.UnitPrice), "unit price %s", quote.UnitPrice)
			assert.True(t, dec(tt.wantDiscount).Equal(quote.RoleDiscount), "discount %s", quote.RoleDiscount)
			assert.Equal(t, tt.wantWholesale, quote.WholesalePrice != nil)
			assert.True(t, quote.InStock)
		})
	}
}

func TestCatalogService_GetProductQuote_FinanceDenied(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleFinance)
	product := newTestProduct("100", 4)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	_, err := fx.service.GetProductQuote(ctx, actor.ID, product.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, fx.audit.outcomes())
}

func TestCatalogService_GetProductQuote_InactiveProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	product := newTestProduct("100", 4)
	product.IsActive = false

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.GetProductQuote(ctx, actor.ID, product.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestCatalogService_RestockProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleSeller)
	product := newTestProduct("100", 4)
	restocked := *product
	restocked.Stock = 10

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Once()
	fx.productRepo.EXPECT().IncrementStock(ctx, product.ID, 6).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(&restocked, nil).Once()

	result, err := fx.service.RestockProduct(ctx, actor.ID, product.ID, &usecase.RestockInput{Quantity: 6})

	require.NoError(t, err)
	assert.Equal(t, 10, result.Stock)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeGranted}, fx.audit.outcomes())
	assert.Equal(t, entity.ResourceInventoryManagement, fx.audit.last().Resource)
}

func TestCatalogService_RestockProduct_CustomerDenied(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	product := newTestProduct("100", 4)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	_, err := fx.service.RestockProduct(ctx, actor.ID, product.ID, &usecase.RestockInput{Quantity: 6})

	require.Error(t, err)
	denial, ok := domainerrors.AsDenial(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.GatePermission, denial.Gate())
}

func TestCatalogService_RestockProduct_InvalidQuantity(t *testing.T) {
	fx := createTestCatalogService(t)

	product := newTestProduct("100", 4)

	_, err := fx.service.RestockProduct(context.Background(), product.ID, product.ID, &usecase.RestockInput{Quantity: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, fx.audit.outcomes())
}
