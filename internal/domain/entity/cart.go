package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product line in a cart, with the unit price seen when it was added.
type CartItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	AddedAt   time.Time       `json:"addedAt"`
}

// Subtotal is quantity times unit price.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart belongs to exactly one user and is identified by that owner.
type Cart struct {
	OwnerID uuid.UUID  `json:"ownerId"`
	Items   []CartItem `json:"items"`
}

// Find returns the line for productID.
func (c *Cart) Find(productID uuid.UUID) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}

// Total sums every line subtotal.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// TotalUnits sums the quantity of every line.
func (c *Cart) TotalUnits() int {
	units := 0
	for _, item := range c.Items {
		units += item.Quantity
	}

	return units
}

// UnitsWith returns the unit count the cart would hold if productID's line
// had quantity units.
func (c *Cart) UnitsWith(productID uuid.UUID, quantity int) int {
	units := quantity
	for _, item := range c.Items {
		if item.ProductID != productID {
			units += item.Quantity
		}
	}

	return units
}

// WishlistItem is a product saved for later.
type WishlistItem struct {
	ProductID uuid.UUID `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// Wishlist belongs to exactly one user.
type Wishlist struct {
	OwnerID uuid.UUID      `json:"ownerId"`
	Items   []WishlistItem `json:"items"`
}

// Contains reports whether productID is already saved.
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}
