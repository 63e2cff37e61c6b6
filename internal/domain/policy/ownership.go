package policy

import (
	"github.com/google/uuid"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
)

// ResourceType is the kind of owned resource an ownership check targets.
type ResourceType string

const (
	ResourceTypeOrder    ResourceType = "order"
	ResourceTypeCart     ResourceType = "cart"
	ResourceTypeWishlist ResourceType = "wishlist"
)

// OwnershipFact is what the guard needs to know about a resource. Callers
// resolve it before asking, so the guard never performs lookups of its own.
type OwnershipFact struct {
	Type       ResourceType
	ResourceID string
	OwnerID    uuid.UUID // uuid.Nil for resources that do not exist yet.
}

// OrderOwnership builds the fact for an order.
func OrderOwnership(order *entity.Order) OwnershipFact {
	return OwnershipFact{Type: ResourceTypeOrder, ResourceID: order.ID.String(), OwnerID: order.CustomerID}
}

// CartOwnership builds the fact for the cart of ownerID.
func CartOwnership(ownerID uuid.UUID) OwnershipFact {
	return OwnershipFact{Type: ResourceTypeCart, ResourceID: ownerID.String(), OwnerID: ownerID}
}

// WishlistOwnership builds the fact for the wishlist of ownerID.
func WishlistOwnership(ownerID uuid.UUID) OwnershipFact {
	return OwnershipFact{Type: ResourceTypeWishlist, ResourceID: ownerID.String(), OwnerID: ownerID}
}

// OwnershipGuard decides whether an actor may act on a specific resource.
type OwnershipGuard struct{}

// NewOwnershipGuard creates an OwnershipGuard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// MayAccess reports whether actor may act on the resource described by fact.
// Administrative roles bypass the check.
func (g *OwnershipGuard) MayAccess(actor *entity.User, fact OwnershipFact) bool {
	if actor == nil {
		return false
	}
	if fact.OwnerID == uuid.Nil || actor.Role.IsAdministrative() {
		return true
	}

	return actor.ID == fact.OwnerID
}

// Check is MayAccess returning an OwnershipViolation denial.
func (g *OwnershipGuard) Check(actor *entity.User, fact OwnershipFact) error {
	if g.MayAccess(actor, fact) {
		return nil
	}

	role := ""
	if actor != nil {
		role = actor.Role.String()
	}

	return domainerrors.NewOwnershipViolation(string(fact.Type), fact.ResourceID, role)
}
