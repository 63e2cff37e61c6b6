package entity

// PerRole is an immutable table holding exactly one value for every role.
// The constructor takes one positional argument per role, so introducing a
// new role breaks every table until it is given a value.
type PerRole[T any] struct {
	values [roleCount]T
}

// NewPerRole builds a complete role table.
func NewPerRole[T any](customer, premium, vip, seller, manager, admin, support, finance, logistics T) PerRole[T] {
	return PerRole[T]{
		values: [roleCount]T{customer, premium, vip, seller, manager, admin, support, finance, logistics},
	}
}

// Get returns the value for role. The boolean is false for unknown roles.
func (p PerRole[T]) Get(role Role) (T, bool) {
	idx, ok := role.index()
	if !ok {
		var zero T

		return zero, false
	}

	return p.values[idx], true
}

// Each calls fn for every role in table order.
func (p PerRole[T]) Each(fn func(Role, T)) {
	for _, role := range AllRoles {
		idx, _ := role.index()
		fn(role, p.values[idx])
	}
}

// Select returns the roles whose value satisfies keep.
func (p PerRole[T]) Select(keep func(T) bool) Roles {
	selected := make(Roles, 0, roleCount)
	p.Each(func(role Role, value T) {
		if keep(value) {
			selected = append(selected, role)
		}
	})

	return selected
}

// MapPerRole derives a new table by transforming every value of p.
func MapPerRole[T, U any](p PerRole[T], fn func(Role, T) U) PerRole[U] {
	var out PerRole[U]
	for _, role := range AllRoles {
		idx, _ := role.index()
		out.values[idx] = fn(role, p.values[idx])
	}

	return out
}
