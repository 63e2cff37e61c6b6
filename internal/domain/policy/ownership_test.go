package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/errors"
)

func TestOwnershipGuard_MayAccess(t *testing.T) {
	guard := NewOwnershipGuard()
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleVIP}
	order := &entity.Order{ID: uuid.New(), CustomerID: owner.ID}

	assert.True(t, guard.MayAccess(owner, OrderOwnership(order)))
	assert.False(t, guard.MayAccess(stranger, OrderOwnership(order)))
	assert.False(t, guard.MayAccess(nil, OrderOwnership(order)))
	assert.True(t, guard.MayAccess(stranger, CartOwnership(stranger.ID)))
	assert.False(t, guard.MayAccess(stranger, WishlistOwnership(owner.ID)))

	// Resources that do not exist yet have no owner to protect.
	assert.True(t, guard.MayAccess(stranger, OwnershipFact{Type: ResourceTypeCart}))

	for _, role := range entity.AllRoles {
		actor := &entity.User{ID: uuid.New(), Role: role}
		assert.Equal(t, role.IsAdministrative(), guard.MayAccess(actor, OrderOwnership(order)), role.String())
	}
}

func TestOwnershipGuard_Check(t *testing.T) {
	guard := NewOwnershipGuard()
	order := &entity.Order{ID: uuid.New(), CustomerID: uuid.New()}
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	err := guard.Check(actor, OrderOwnership(order))
	assert.True(t, errors.Is(err, domainerrors.ErrOwnershipViolation))

	violation, ok := errors.AsType[*domainerrors.OwnershipViolationError](err)
	assert.True(t, ok)
	assert.Equal(t, "order", violation.ResourceType)
	assert.Equal(t, order.ID.String(), violation.ResourceID)
	assert.Equal(t, domainerrors.GateOwnership, violation.Gate())

	manager := &entity.User{ID: uuid.New(), Role: entity.RoleManager}
	assert.NoError(t, guard.Check(manager, OrderOwnership(order)))
}
