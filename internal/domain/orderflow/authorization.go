package orderflow

import "orderguard/internal/domain/entity"

type snapshotRow struct {
	view, edit, cancel, refund, statusChange bool
}

var authorizationTemplate = entity.NewPerRole(
	snapshotRow{view: true, cancel: true},                                               // customer
	snapshotRow{view: true},                                                             // premium
	snapshotRow{view: true},                                                             // vip
	snapshotRow{view: true},                                                             // seller
	snapshotRow{view: true, edit: true, cancel: true, refund: true, statusChange: true}, // manager
	snapshotRow{view: true, edit: true, cancel: true, refund: true, statusChange: true}, // admin
	snapshotRow{view: true, edit: true, cancel: true, refund: true},                     // support
	snapshotRow{view: true, refund: true},                                               // finance
	snapshotRow{view: true, statusChange: true},                                         // logistics
)

// DefaultAuthorization returns the role snapshot stamped on every new order.
func DefaultAuthorization() entity.OrderAuthorization {
	return entity.OrderAuthorization{
		ViewPermissions:         authorizationTemplate.Select(func(r snapshotRow) bool { return r.view }),
		EditPermissions:         authorizationTemplate.Select(func(r snapshotRow) bool { return r.edit }),
		CancelPermissions:       authorizationTemplate.Select(func(r snapshotRow) bool { return r.cancel }),
		RefundPermissions:       authorizationTemplate.Select(func(r snapshotRow) bool { return r.refund }),
		StatusChangePermissions: authorizationTemplate.Select(func(r snapshotRow) bool { return r.statusChange }),
	}
}
