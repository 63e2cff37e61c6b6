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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	userRepo     *mockRepo.MockUserRepository
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
	audit        *auditTrail
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	auth, trail := newTestAuthorizer(t, userRepo)

	service := NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		ProductRepo:  productRepo,
		Authorizer:   auth,
		Logger:       newDiscardLogger(),
	})

	return wishlistServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		audit:        trail,
	}
}

func TestWishlistService_GetWishlist_CustomerDenied(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	_, err := fx.service.GetWishlist(ctx, actor.ID, actor.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	denial, ok := domainerrors.AsDenial(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.GatePermission, denial.Gate())
}

func TestWishlistService_GetWishlist_EmptyItems(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.wishlistRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(&entity.Wishlist{OwnerID: actor.ID}, nil)

	wishlist, err := fx.service.GetWishlist(ctx, actor.ID, actor.ID)

	require.NoError(t, err)
	assert.NotNil(t, wishlist.Items)
	assert.Empty(t, wishlist.Items)
}

func TestWishlistService_AddWishlistItem_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleVIP)
	product := newTestProduct("30", 1)
	item := entity.WishlistItem{ProductID: product.ID, AddedAt: testNow}

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().Add(ctx, actor.ID, item).Return(nil)
	fx.wishlistRepo.EXPECT().
		FindByOwner(ctx, actor.ID).
		Return(&entity.Wishlist{OwnerID: actor.ID, Items: []entity.WishlistItem{item}}, nil)

	wishlist, err := fx.service.AddWishlistItem(ctx, actor.ID, actor.ID, product.ID)

	require.NoError(t, err)
	assert.True(t, wishlist.Contains(product.ID))
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeGranted}, fx.audit.outcomes())
	assert.Equal(t, product.ID.String(), fx.audit.last().ResourceID)
}

func TestWishlistService_AddWishlistItem_Duplicate(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)
	product := newTestProduct("30", 1)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().
		Add(ctx, actor.ID, mock.AnythingOfType("entity.WishlistItem")).
		Return(repository.ErrWishlistItemExists)

	_, err := fx.service.AddWishlistItem(ctx, actor.ID, actor.ID, product.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestWishlistService_RemoveWishlistItem_OtherUsersWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	_, err := fx.service.RemoveWishlistItem(ctx, actor.ID, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}
