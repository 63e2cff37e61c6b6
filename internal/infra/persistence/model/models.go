// Package model holds the GORM persistence models. Domain entities never carry
// GORM tags; repositories map between the two.
package model

// All lists every persistence model, in foreign-key order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&ProductModel{},
		&CouponModel{},
		&CartItemModel{},
		&WishlistItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderChangeModel{},
		&OrderCouponModel{},
		&AuditEventModel{},
	}
}
