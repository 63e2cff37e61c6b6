package orderflow

import (
	"time"

	"github.com/shopspring/decimal"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
)

// Snapshot permission names as they appear in denials.
const (
	permCancel       = "cancelPermissions"
	permRefund       = "refundPermissions"
	permStatusChange = "statusChangePermissions"
	permEdit         = "editPermissions"
)

func denied(action, permission string, actor *entity.User) error {
	return domainerrors.NewPermissionDenied(action, []string{permission}, actor.Role.String())
}

func terminal(order *entity.Order) error {
	return domainerrors.ErrTerminalState.WithDetails("order is " + string(order.Status))
}

func ptr[T any](v T) *T {
	return &v
}

// MayCancelAnyState reports whether actor cancels with staff authority: its
// role is in the order's cancel snapshot and is administrative.
func MayCancelAnyState(order *entity.Order, actor *entity.User) bool {
	return order.Authorization.CancelPermissions.Contains(actor.Role) && actor.Role.IsAdministrative()
}

// Cancel moves order to cancelled. Staff in the cancel snapshot may cancel
// from any non-terminal status. The owning customer may cancel only while the
// order is pending or paid.
func (m *StateMachine) Cancel(order *entity.Order, actor *entity.User, reason string, now time.Time) (*entity.Order, error) {
	privileged := MayCancelAnyState(order, actor)
	if !privileged && !order.IsOwnedBy(actor.ID) {
		return nil, denied("cancel", permCancel, actor)
	}
	if order.Status.IsTerminal() {
		return nil, terminal(order)
	}
	if !privileged && order.Status != entity.OrderStatusPending && order.Status != entity.OrderStatusPaid {
		return nil, domainerrors.NewInvalidTransition(string(order.Status), string(entity.OrderStatusCancelled))
	}

	next := order.Clone()
	next.Status = entity.OrderStatusCancelled
	next.Audit.CancelledBy = ptr(actor.ID)
	next.UpdatedAt = now
	next.ChangeHistory = append(next.ChangeHistory,
		newEntry(actor, now, entity.ChangeTypeCancelled, string(order.Status), string(next.Status), reason))

	return next, nil
}

// ProcessRefund refunds a completed payment. A nil amount refunds the full
// total. The amount must be positive and not exceed the total.
func (m *StateMachine) ProcessRefund(
	order *entity.Order, actor *entity.User, amount *decimal.Decimal, reason string, now time.Time,
) (*entity.Order, error) {
	if !order.Authorization.RefundPermissions.Contains(actor.Role) {
		return nil, denied("refund", permRefund, actor)
	}
	if order.Status.IsTerminal() {
		return nil, terminal(order)
	}
	if order.Payment.Status != entity.PaymentStatusCompleted {
		return nil, domainerrors.NewInvalidTransition(string(order.Status), string(entity.OrderStatusRefunded))
	}

	refund := order.Pricing.Total
	if amount != nil {
		refund = *amount
	}
	if !refund.IsPositive() || refund.GreaterThan(order.Pricing.Total) {
		return nil, domainerrors.ErrInvalidRefundAmount.WithDetails(
			"requested " + refund.String() + ", order total " + order.Pricing.Total.String())
	}

	next := order.Clone()
	next.Status = entity.OrderStatusRefunded
	next.Payment.Status = entity.PaymentStatusRefunded
	next.Payment.RefundedAt = ptr(now)
	next.Payment.RefundAmount = refund
	next.Audit.RefundedBy = ptr(actor.ID)
	next.UpdatedAt = now
	next.ChangeHistory = append(next.ChangeHistory,
		newEntry(actor, now, entity.ChangeTypeRefunded, string(order.Status), string(next.Status), reason))

	return next, nil
}

// ChangeStatus moves order to status. Apart from the status-change snapshot
// the only guard is that the order is not terminal.
func (m *StateMachine) ChangeStatus(
	order *entity.Order, actor *entity.User, status entity.OrderStatus, reason string, now time.Time,
) (*entity.Order, error) {
	if !order.Authorization.StatusChangePermissions.Contains(actor.Role) {
		return nil, denied("change_status", permStatusChange, actor)
	}
	if order.Status.IsTerminal() {
		return nil, terminal(order)
	}
	if !status.IsValid() || status == order.Status {
		return nil, domainerrors.NewInvalidTransition(string(order.Status), string(status))
	}

	next := order.Clone()
	next.Status = status
	switch status {
	case entity.OrderStatusPaid:
		next.Payment.Status = entity.PaymentStatusCompleted
		next.Payment.PaidAt = ptr(now)
	case entity.OrderStatusShipped:
		next.Shipping.ShippedAt = ptr(now)
	case entity.OrderStatusDelivered:
		next.Shipping.DeliveredAt = ptr(now)
	}
	next.Audit.ModifiedBy = ptr(actor.ID)
	next.UpdatedAt = now
	next.ChangeHistory = append(next.ChangeHistory,
		newEntry(actor, now, entity.ChangeTypeStatusChanged, string(order.Status), string(status), reason))

	return next, nil
}

// UpdateInternalNotes replaces the staff-only notes.
func (m *StateMachine) UpdateInternalNotes(order *entity.Order, actor *entity.User, notes string, now time.Time) (*entity.Order, error) {
	if !order.Authorization.EditPermissions.Contains(actor.Role) {
		return nil, denied("edit", permEdit, actor)
	}

	next := order.Clone()
	next.Notes.Internal = notes
	next.Audit.ModifiedBy = ptr(actor.ID)
	next.UpdatedAt = now
	next.ChangeHistory = append(next.ChangeHistory,
		newEntry(actor, now, entity.ChangeTypeModified, order.Notes.Internal, notes, "internal notes updated"))

	return next, nil
}

// ApplyCoupon redeems coupon against a pending order. Marking the coupon used
// is left to the store, which must do it atomically with saving the order.
func (m *StateMachine) ApplyCoupon(
	order *entity.Order, coupon *entity.Coupon, actor *entity.User, now time.Time,
) (*entity.Order, entity.AppliedCoupon, error) {
	if !coupon.IsActiveAt(now) {
		return nil, entity.AppliedCoupon{}, domainerrors.ErrCouponInvalid.WithDetails("coupon is outside its validity window")
	}
	if order.Status != entity.OrderStatusPending {
		return nil, entity.AppliedCoupon{}, domainerrors.ErrCouponInvalid.WithDetails(
			"coupons apply only to pending orders, order is " + string(order.Status))
	}

	amounts, deducted, err := m.discounts.ApplyCoupon(order.Pricing, coupon)
	if err != nil {
		return nil, entity.AppliedCoupon{}, err
	}

	applied := entity.AppliedCoupon{
		ID:        coupon.ID,
		Code:      coupon.Code,
		Discount:  deducted,
		Type:      coupon.Type,
		AppliedAt: now,
	}

	next := order.Clone()
	next.Pricing = amounts
	next.Coupons = append(next.Coupons, applied)
	next.Audit.ModifiedBy = ptr(actor.ID)
	next.UpdatedAt = now
	next.ChangeHistory = append(next.ChangeHistory, newEntry(actor, now, entity.ChangeTypeModified,
		order.Pricing.Total.String(), amounts.Total.String(), "coupon "+coupon.Code+" applied"))

	return next, applied, nil
}
