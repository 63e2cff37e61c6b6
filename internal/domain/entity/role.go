// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the classification of an actor. The set is closed: every
// role-keyed table is built through NewPerRole, which takes one value per role.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"
	// RolePremium is reached automatically once a customer has spent enough.
	RolePremium Role = "premium"
	// RoleVIP is reached automatically once a premium customer has spent enough.
	RoleVIP Role = "vip"
	// RoleSeller buys at wholesale prices and manages its own inventory.
	RoleSeller Role = "seller"
	// RoleManager oversees orders, carts and catalog.
	RoleManager Role = "manager"
	// RoleAdmin has every manager capability plus system administration.
	RoleAdmin Role = "admin"
	// RoleSupport assists customers with orders and refunds.
	RoleSupport Role = "support"
	// RoleFinance handles pricing, refunds and financial reporting.
	RoleFinance Role = "finance"
	// RoleLogistics handles shipping and inventory.
	RoleLogistics Role = "logistics"
)

const roleCount = 9

// AllRoles lists every role in table order.
var AllRoles = Roles{
	RoleCustomer, RolePremium, RoleVIP, RoleSeller, RoleManager,
	RoleAdmin, RoleSupport, RoleFinance, RoleLogistics,
}

var administrativeRoles = NewPerRole(false, false, false, false, true, true, true, true, true)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the nine known roles.
func (r Role) IsValid() bool {
	_, ok := r.index()

	return ok
}

// IsAdministrative reports whether the role overrides ownership checks.
func (r Role) IsAdministrative() bool {
	admin, _ := administrativeRoles.Get(r)

	return admin
}

func (r Role) index() (int, bool) {
	switch r {
	case RoleCustomer:
		return 0, true
	case RolePremium:
		return 1, true
	case RoleVIP:
		return 2, true
	case RoleSeller:
		return 3, true
	case RoleManager:
		return 4, true
	case RoleAdmin:
		return 5, true
	case RoleSupport:
		return 6, true
	case RoleFinance:
		return 7, true
	case RoleLogistics:
		return 8, true
	default:
		return 0, false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for storage and JWT claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
