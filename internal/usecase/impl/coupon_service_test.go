package impl

import (
	"context"
	"testing"
	"time"

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

type couponServiceFixtures struct {
	service    usecase.CouponUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	orderRepo  *mockRepo.MockOrderRepository
	couponRepo *mockRepo.MockCouponRepository
	audit      *auditTrail
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	auth, trail := newTestAuthorizer(t, userRepo)

	service := NewCouponService(CouponServiceParams{
		TxManager:  txManager,
		OrderRepo:  orderRepo,
		CouponRepo: couponRepo,
		Authorizer: auth,
		Logger:     newDiscardLogger(),
	})

	return couponServiceFixtures{
		service:    service,
		txManager:  txManager,
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		couponRepo: couponRepo,
		audit:      trail,
	}
}

func newTestCoupon(ownerID uuid.UUID, discount string, couponType entity.CouponType) *entity.Coupon {
	return &entity.Coupon{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Code:            "SPRING10",
		Discount:        dec(discount),
		Type:            couponType,
		ValidFrom:       testNow.Add(-24 * time.Hour),
		ValidUntil:      testNow.Add(24 * time.Hour),
		MinimumPurchase: dec("0"),
	}
}

func (fx couponServiceFixtures) expectCouponTx(t *testing.T) {
	factory := expectTx(t, fx.txManager)
	factory.EXPECT().CouponRepo().Return(fx.couponRepo)
	factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
}

func TestCouponService_ApplyCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)
	order := newTestOrder(actor.ID, entity.OrderStatusPending, "200")
	coupon := newTestCoupon(actor.ID, "10", entity.CouponTypePercentage)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.expectCouponTx(t)
	fx.couponRepo.EXPECT().FindByOwnerAndCode(ctx, actor.ID, coupon.Code).Return(coupon, nil)
	fx.couponRepo.EXPECT().Claim(ctx, coupon.ID, actor.ID, testNow).Return(nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order"), order.Version).Return(nil)

	view, err := fx.service.ApplyCoupon(ctx, actor.ID, &usecase.ApplyCouponInput{CouponCode: coupon.Code, OrderID: order.ID})

	require.NoError(t, err)
	require.Len(t, view.Coupons, 1)
	assert.Equal(t, coupon.Code, view.Coupons[0].Code)
	assert.True(t, dec("20").Equal(view.Coupons[0].Discount))
	assert.True(t, dec("180").Equal(view.Pricing.Total))
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeGranted}, fx.audit.outcomes())
}

func TestCouponService_ApplyCoupon_CustomerCannotApply(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleCustomer)
	order := newTestOrder(actor.ID, entity.OrderStatusPending, "200")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.ApplyCoupon(ctx, actor.ID, &usecase.ApplyCouponInput{CouponCode: "SPRING10", OrderID: order.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCouponService_ApplyCoupon_UnknownCode(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)
	order := newTestOrder(actor.ID, entity.OrderStatusPending, "200")

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.expectCouponTx(t)
	fx.couponRepo.EXPECT().FindByOwnerAndCode(ctx, actor.ID, "NOPE").Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.ApplyCoupon(ctx, actor.ID, &usecase.ApplyCouponInput{CouponCode: "NOPE", OrderID: order.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponInvalid)
	assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeFailed}, fx.audit.outcomes())
}

func TestCouponService_ApplyCoupon_AlreadyClaimed(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RolePremium)
	order := newTestOrder(actor.ID, entity.OrderStatusPending, "200")
	coupon := newTestCoupon(actor.ID, "15", entity.CouponTypeFixed)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.expectCouponTx(t)
	fx.couponRepo.EXPECT().FindByOwnerAndCode(ctx, actor.ID, coupon.Code).Return(coupon, nil)
	fx.couponRepo.EXPECT().Claim(ctx, coupon.ID, actor.ID, testNow).Return(repository.ErrCouponAlreadyClaimed)

	_, err := fx.service.ApplyCoupon(ctx, actor.ID, &usecase.ApplyCouponInput{CouponCode: coupon.Code, OrderID: order.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponAlreadyUsed)
}

func TestCouponService_ApplyCoupon_PaidOrder(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleVIP)
	order := newTestOrder(actor.ID, entity.OrderStatusPaid, "200")
	coupon := newTestCoupon(actor.ID, "10", entity.CouponTypePercentage)

	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.expectCouponTx(t)
	fx.couponRepo.EXPECT().FindByOwnerAndCode(ctx, actor.ID, coupon.Code).Return(coupon, nil)

	_, err := fx.service.ApplyCoupon(ctx, actor.ID, &usecase.ApplyCouponInput{CouponCode: coupon.Code, OrderID: order.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponInvalid)
}
