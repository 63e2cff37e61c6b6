package entity

// Action is one of the five permission columns.
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionSpecial Action = "special"
)

// Actions lists the permission columns in display order.
var Actions = []Action{ActionView, ActionCreate, ActionUpdate, ActionDelete, ActionSpecial}

// IsValid checks if the Action is one of the five permission columns.
func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionCreate, ActionUpdate, ActionDelete, ActionSpecial:
		return true
	default:
		return false
	}
}

// Resource names a capability inside a permission cell.
type Resource string

// Order, cart and wishlist scopes.
const (
	ResourceOwnOrders            Resource = "own_orders"
	ResourceAllOrders            Resource = "all_orders"
	ResourceCustomerOrders       Resource = "customer_orders"
	ResourceOrders               Resource = "orders"
	ResourceSpecialOrders        Resource = "special_orders"
	ResourceOwnCart              Resource = "own_cart"
	ResourceAllCarts             Resource = "all_carts"
	ResourceCartItems            Resource = "cart_items"
	ResourceOwnCartItems         Resource = "own_cart_items"
	ResourceAllCartItems         Resource = "all_cart_items"
	ResourceCustomerCartItems    Resource = "customer_cart_items"
	ResourceWishlist             Resource = "wishlist"
	ResourceWishlistItems        Resource = "wishlist_items"
	ResourceOwnWishlist          Resource = "own_wishlist"
	ResourceOwnWishlistItems     Resource = "own_wishlist_items"
	ResourceRefunds              Resource = "refunds"
	ResourceRefundProcessing     Resource = "refund_processing"
	ResourceOrderManagement      Resource = "order_management"
	ResourceApplyCoupons         Resource = "apply_coupons"
	ResourcePrioritySupport      Resource = "priority_support"
	ResourceExclusiveAccess      Resource = "exclusive_access"
	ResourceCustomerSupport      Resource = "customer_support"
	ResourceExclusiveProducts    Resource = "exclusive_products"
	ResourceFinancialReports     Resource = "financial_reports"
	ResourceFinancialAdjustments Resource = "financial_adjustments"
	ResourceFinancialManagement  Resource = "financial_management"
	ResourceDeliveryReports      Resource = "delivery_reports"
	ResourceReports              Resource = "reports"
	ResourcePromotions           Resource = "promotions"
	ResourceShipping             Resource = "shipping"
	ResourceShippingUpdates      Resource = "shipping_updates"
	ResourceShippingManagement   Resource = "shipping_management"
)

// Catalog, inventory and system scopes.
const (
	ResourceProducts            Resource = "products"
	ResourceOwnProducts         Resource = "own_products"
	ResourceAllProducts         Resource = "all_products"
	ResourceCategories          Resource = "categories"
	ResourceWholesalePrices     Resource = "wholesale_prices"
	ResourceWholesalePricing    Resource = "wholesale_pricing"
	ResourcePricing             Resource = "pricing"
	ResourceInventory           Resource = "inventory"
	ResourceOwnInventory        Resource = "own_inventory"
	ResourceAllInventory        Resource = "all_inventory"
	ResourceInventoryUpdates    Resource = "inventory_updates"
	ResourceInventoryItems      Resource = "inventory_items"
	ResourceInventoryManagement Resource = "inventory_management"
	ResourceSystem              Resource = "system"
	ResourceSystemConfig        Resource = "system_config"
	ResourceSystemManagement    Resource = "system_management"
)

// AllResources lists every resource named by the permission matrix.
var AllResources = []Resource{
	ResourceOwnOrders, ResourceAllOrders, ResourceCustomerOrders, ResourceOrders,
	ResourceSpecialOrders, ResourceOwnCart, ResourceAllCarts, ResourceCartItems, ResourceOwnCartItems,
	ResourceAllCartItems, ResourceCustomerCartItems, ResourceWishlist, ResourceWishlistItems,
	ResourceOwnWishlist, ResourceOwnWishlistItems, ResourceRefunds, ResourceRefundProcessing,
	ResourceOrderManagement, ResourceApplyCoupons, ResourcePrioritySupport, ResourceExclusiveAccess,
	ResourceCustomerSupport, ResourceExclusiveProducts, ResourceFinancialReports,
	ResourceFinancialAdjustments, ResourceFinancialManagement, ResourceDeliveryReports,
	ResourceReports, ResourcePromotions, ResourceShipping, ResourceShippingUpdates,
	ResourceShippingManagement, ResourceProducts, ResourceOwnProducts, ResourceAllProducts,
	ResourceCategories, ResourceWholesalePrices, ResourceWholesalePricing, ResourcePricing,
	ResourceInventory, ResourceOwnInventory, ResourceAllInventory, ResourceInventoryUpdates,
	ResourceInventoryItems, ResourceInventoryManagement, ResourceSystem, ResourceSystemConfig,
	ResourceSystemManagement,
}

// String returns the string representation of the Resource.
func (r Resource) String() string {
	return string(r)
}
