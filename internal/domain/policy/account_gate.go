package policy

import (
	"time"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
)

// AccountGate decides whether an account may act at all. Checks run in a fixed
// order and the first failure wins: authentication, status, lock, then email
// verification for purchase actions.
type AccountGate struct{}

// NewAccountGate creates an AccountGate.
func NewAccountGate() *AccountGate {
	return &AccountGate{}
}

// Check validates actor at now. purchase marks actions that need a verified email.
func (g *AccountGate) Check(actor *entity.User, purchase bool, now time.Time) error {
	if actor == nil {
		return domainerrors.NewAccountDenial(domainerrors.ErrAuthenticationRequired, "authenticated actor", "anonymous")
	}

	if actor.Status != entity.AccountStatusActive {
		return domainerrors.NewAccountDenial(domainerrors.ErrAccountInactive,
			"status "+string(entity.AccountStatusActive), "status "+string(actor.Status))
	}

	if actor.IsLocked(now) {
		return domainerrors.NewAccountDenial(domainerrors.ErrAccountLocked,
			"no active lockout", "locked until "+actor.LockoutUntil.UTC().Format(time.RFC3339))
	}

	if purchase && !actor.EmailVerified {
		return domainerrors.NewAccountDenial(domainerrors.ErrEmailUnverified, "verified email", "unverified email")
	}

	return nil
}
