package impl

import (
	"context"

	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	auth *PurchaseAuthorizer
}

// PermissionServiceParams holds dependencies for PermissionService, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	Authorizer *PurchaseAuthorizer
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	return &permissionService{auth: params.Authorizer}
}

// GetPermissions needs only an authenticated actor; account status shows up
// in CanPurchase instead of failing the call.
func (srv *permissionService) GetPermissions(ctx context.Context, actorID uuid.UUID) (*usecase.PermissionsOutput, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	limits := srv.auth.Limits(actor)

	return &usecase.PermissionsOutput{
		Role:                  actor.Role,
		Permissions:           srv.auth.matrix.CapabilitiesOf(actor.Role),
		Limits:                limits,
		RoleDiscount:          srv.auth.discounts.RoleDiscountPercent(actor.Role),
		CanPurchase:           actor.CanPurchase(srv.auth.Now()),
		CanApplyCoupons:       limits.CanApplyCoupons,
		CanSeeWholesalePrices: limits.CanSeeWholesalePrices,
		CanManageInventory:    limits.CanManageInventory,
		CanProcessRefunds:     limits.CanProcessRefunds,
	}, nil
}
