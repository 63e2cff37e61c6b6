// Package policy holds the stateless authorization rules: which role may do
// what, how much it may buy, whether its account may act at all, and whether
// it may touch a resource owned by someone else.
package policy

import "orderguard/internal/domain/entity"

// Capabilities is the content of one permission-matrix row.
type Capabilities struct {
	View    []entity.Resource `json:"view"`
	Create  []entity.Resource `json:"create"`
	Update  []entity.Resource `json:"update"`
	Delete  []entity.Resource `json:"delete"`
	Special []entity.Resource `json:"special"`
}

func (c Capabilities) cell(action entity.Action) []entity.Resource {
	switch action {
	case entity.ActionView:
		return c.View
	case entity.ActionCreate:
		return c.Create
	case entity.ActionUpdate:
		return c.Update
	case entity.ActionDelete:
		return c.Delete
	case entity.ActionSpecial:
		return c.Special
	default:
		return nil
	}
}

// extend returns a copy of c with extra resources appended to each cell.
func (c Capabilities) extend(extra Capabilities) Capabilities {
	return Capabilities{
		View:    joinResources(c.View, extra.View),
		Create:  joinResources(c.Create, extra.Create),
		Update:  joinResources(c.Update, extra.Update),
		Delete:  joinResources(c.Delete, extra.Delete),
		Special: joinResources(c.Special, extra.Special),
	}
}

func joinResources(a, b []entity.Resource) []entity.Resource {
	out := make([]entity.Resource, 0, len(a)+len(b))

	return append(append(out, a...), b...)
}

type resourceSet map[entity.Resource]struct{}

// PermissionMatrix answers role x action x resource questions. It is
// read-only after construction and safe for concurrent use.
type PermissionMatrix struct {
	rows  entity.PerRole[Capabilities]
	index entity.PerRole[map[entity.Action]resourceSet]
}

// NewPermissionMatrix builds the matrix from the default role table.
func NewPermissionMatrix() *PermissionMatrix {
	return newPermissionMatrix(defaultCapabilities())
}

func newPermissionMatrix(rows entity.PerRole[Capabilities]) *PermissionMatrix {
	index := entity.MapPerRole(rows, func(_ entity.Role, c Capabilities) map[entity.Action]resourceSet {
		idx := make(map[entity.Action]resourceSet, len(entity.Actions))
		for _, action := range entity.Actions {
			set := make(resourceSet)
			for _, resource := range c.cell(action) {
				set[resource] = struct{}{}
			}
			idx[action] = set
		}

		return idx
	})

	return &PermissionMatrix{rows: rows, index: index}
}

// Allows reports whether role may perform action on resource. Unknown roles,
// actions and resources are denied.
func (m *PermissionMatrix) Allows(role entity.Role, action entity.Action, resource entity.Resource) bool {
	idx, ok := m.index.Get(role)
	if !ok {
		return false
	}
	_, allowed := idx[action][resource]

	return allowed
}

// AllowsAny returns the first of resources that role may act on.
func (m *PermissionMatrix) AllowsAny(role entity.Role, action entity.Action, resources ...entity.Resource) (entity.Resource, bool) {
	for _, resource := range resources {
		if m.Allows(role, action, resource) {
			return resource, true
		}
	}

	return "", false
}

// CapabilitiesOf returns the full row for role. Unknown roles get an empty row.
func (m *PermissionMatrix) CapabilitiesOf(role entity.Role) Capabilities {
	row, ok := m.rows.Get(role)
	if !ok {
		return Capabilities{
			View:    []entity.Resource{},
			Create:  []entity.Resource{},
			Update:  []entity.Resource{},
			Delete:  []entity.Resource{},
			Special: []entity.Resource{},
		}
	}

	return row.extend(Capabilities{})
}

func defaultCapabilities() entity.PerRole[Capabilities] {
	customer := Capabilities{
		View:    []entity.Resource{entity.ResourceOwnOrders, entity.ResourceOwnCart, entity.ResourceProducts, entity.ResourceCategories},
		Create:  []entity.Resource{entity.ResourceOrders, entity.ResourceCartItems},
		Update:  []entity.Resource{entity.ResourceOwnOrders, entity.ResourceOwnCart},
		Delete:  []entity.Resource{entity.ResourceOwnCartItems},
		Special: []entity.Resource{},
	}

	premium := Capabilities{
		View:    []entity.Resource{entity.ResourceOwnOrders, entity.ResourceOwnCart, entity.ResourceProducts, entity.ResourceCategories, entity.ResourceWishlist},
		Create:  []entity.Resource{entity.ResourceOrders, entity.ResourceCartItems, entity.ResourceWishlistItems},
		Update:  []entity.Resource{entity.ResourceOwnOrders, entity.ResourceOwnCart, entity.ResourceOwnWishlist},
		Delete:  []entity.Resource{entity.ResourceOwnCartItems, entity.ResourceOwnWishlistItems},
		Special: []entity.Resource{entity.ResourceApplyCoupons},
	}

	vip := premium.extend(Capabilities{
		View:    []entity.Resource{entity.ResourceExclusiveProducts},
		Create:  []entity.Resource{entity.ResourceSpecialOrders},
		Special: []entity.Resource{entity.ResourcePrioritySupport, entity.ResourceExclusiveAccess},
	})

	seller := Capabilities{
		View: []entity.Resource{
			entity.ResourceOwnOrders, entity.ResourceOwnCart, entity.ResourceProducts, entity.ResourceCategories,
			entity.ResourceWholesalePrices, entity.ResourceInventory,
		},
		Create:  []entity.Resource{entity.ResourceOrders, entity.ResourceCartItems, entity.ResourceProducts, entity.ResourceInventoryUpdates},
		Update:  []entity.Resource{entity.ResourceOwnOrders, entity.ResourceOwnCart, entity.ResourceOwnProducts, entity.ResourceOwnInventory},
		Delete:  []entity.Resource{entity.ResourceOwnCartItems, entity.ResourceOwnProducts},
		Special: []entity.Resource{entity.ResourceApplyCoupons, entity.ResourceWholesalePricing, entity.ResourceInventoryManagement},
	}

	manager := Capabilities{
		View: []entity.Resource{
			entity.ResourceAllOrders, entity.ResourceAllCarts, entity.ResourceProducts, entity.ResourceCategories,
			entity.ResourceWholesalePrices, entity.ResourceInventory, entity.ResourceReports,
		},
		Create: []entity.Resource{
			entity.ResourceOrders, entity.ResourceCartItems, entity.ResourceProducts,
			entity.ResourceInventoryUpdates, entity.ResourcePromotions,
		},
		Update: []entity.Resource{
			entity.ResourceAllOrders, entity.ResourceAllCarts, entity.ResourceAllProducts,
			entity.ResourceAllInventory, entity.ResourcePromotions,
		},
		Delete: []entity.Resource{entity.ResourceAllCartItems, entity.ResourceAllProducts, entity.ResourcePromotions},
		Special: []entity.Resource{
			entity.ResourceApplyCoupons, entity.ResourceWholesalePricing, entity.ResourceInventoryManagement,
			entity.ResourceOrderManagement, entity.ResourceRefundProcessing,
		},
	}

	admin := manager.extend(Capabilities{
		View:    []entity.Resource{entity.ResourceSystem},
		Create:  []entity.Resource{entity.ResourceSystemConfig},
		Update:  []entity.Resource{entity.ResourceSystem},
		Delete:  []entity.Resource{entity.ResourceSystem},
		Special: []entity.Resource{entity.ResourceSystemManagement},
	})

	support := Capabilities{
		View:    []entity.Resource{entity.ResourceCustomerOrders, entity.ResourceProducts, entity.ResourceCategories, entity.ResourceRefunds},
		Create:  []entity.Resource{entity.ResourceOrders, entity.ResourceRefunds},
		Update:  []entity.Resource{entity.ResourceCustomerOrders, entity.ResourceRefunds},
		Delete:  []entity.Resource{entity.ResourceCustomerCartItems},
		Special: []entity.Resource{entity.ResourceApplyCoupons, entity.ResourceRefundProcessing, entity.ResourceCustomerSupport},
	}

	finance := Capabilities{
		View:    []entity.Resource{entity.ResourceAllOrders, entity.ResourceFinancialReports, entity.ResourceRefunds, entity.ResourcePricing},
		Create:  []entity.Resource{entity.ResourceOrders, entity.ResourceRefunds, entity.ResourceFinancialAdjustments},
		Update:  []entity.Resource{entity.ResourceAllOrders, entity.ResourceRefunds, entity.ResourcePricing},
		Delete:  []entity.Resource{entity.ResourceAllCartItems},
		Special: []entity.Resource{entity.ResourceApplyCoupons, entity.ResourceRefundProcessing, entity.ResourceFinancialManagement},
	}

	logistics := Capabilities{
		View:    []entity.Resource{entity.ResourceAllOrders, entity.ResourceShipping, entity.ResourceInventory, entity.ResourceDeliveryReports},
		Create:  []entity.Resource{entity.ResourceOrders, entity.ResourceShippingUpdates, entity.ResourceInventoryUpdates},
		Update:  []entity.Resource{entity.ResourceAllOrders, entity.ResourceShipping, entity.ResourceInventory},
		Delete:  []entity.Resource{entity.ResourceAllCartItems, entity.ResourceInventoryItems},
		Special: []entity.Resource{entity.ResourceApplyCoupons, entity.ResourceShippingManagement, entity.ResourceInventoryManagement},
	}

	return entity.NewPerRole(customer, premium, vip, seller, manager, admin, support, finance, logistics)
}
