package impl

import (
	"context"
	"log/slog"

	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/policy"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	couponRepo repository.CouponRepository
	auth       *PurchaseAuthorizer
	logger     *slog.Logger
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	CouponRepo repository.CouponRepository
	Authorizer *PurchaseAuthorizer
	Logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		couponRepo: params.CouponRepo,
		auth:       params.Authorizer,
		logger:     params.Logger,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplyCoupon redeems one of the actor's coupons against a pending order. The
// coupon claim and the order update commit together or not at all.
func (srv *couponService) ApplyCoupon(ctx context.Context, actorID uuid.UUID, input *usecase.ApplyCouponInput) (*usecase.OrderView, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	check := Check{
		Action:     entity.ActionSpecial,
		Resources:  []entity.Resource{entity.ResourceApplyCoupons},
		Purchase:   true,
		ResourceID: input.OrderID.String(),
	}
	if err := srv.auth.Admit(ctx, actor, check); err != nil {
		return nil, err
	}

	order, err := loadOrder(ctx, srv.orderRepo, input.OrderID)
	if err != nil {
		return nil, err
	}
	ownership := policy.OrderOwnership(order)
	check.Ownership = &ownership
	if _, err := srv.auth.Permit(ctx, actor, check); err != nil {
		return nil, err
	}
	if err := srv.auth.CheckFlag(ctx, actor, check, policy.LimitCouponApplication); err != nil {
		return nil, err
	}

	var next *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		coupon, err := couponRepo.FindByOwnerAndCode(ctx, actor.ID, input.CouponCode)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return domainerrors.ErrCouponInvalid.WithDetails("coupon " + input.CouponCode + " not found")
			}

			return errors.Wrap(err, "failed to load coupon")
		}

		now := srv.auth.Now()
		next, _, err = srv.auth.orders.ApplyCoupon(order, coupon, actor, now)
		if err != nil {
			return err
		}

		if err := couponRepo.Claim(ctx, coupon.ID, actor.ID, now); err != nil {
			if errors.Is(err, repository.ErrCouponAlreadyClaimed) {
				return domainerrors.ErrCouponAlreadyUsed
			}

			return errors.Wrap(err, "failed to claim coupon")
		}

		return saveOrder(ctx, repoFactory.OrderRepo(), next, order.Version)
	})
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		srv.log(ctx).Warn("Failed to apply coupon",
			slog.String("code", input.CouponCode),
			slog.Any("order_id", input.OrderID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to apply coupon")
	}
	srv.log(ctx).Info("Coupon applied",
		slog.String("code", input.CouponCode),
		slog.Any("order_id", order.ID),
		slog.String("total", next.Pricing.Total.String()),
	)

	return usecase.OrderViewFor(next, actor.Role), nil
}
