// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	AccountStatusActive              AccountStatus = "active"
	AccountStatusInactive            AccountStatus = "inactive"
	AccountStatusSuspended           AccountStatus = "suspended"
	AccountStatusPendingVerification AccountStatus = "pending_verification"
)

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusSuspended, AccountStatusPendingVerification:
		return true
	default:
		return false
	}
}

// User is the actor record every authorization decision is made against.
type User struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	Role            Role
	Status          AccountStatus
	EmailVerified   bool
	LockoutUntil    *time.Time // Login is refused until this instant.
	LoginAttempts   int        // Consecutive failed logins since the last success.
	PurchaseHistory PurchaseHistory
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PurchaseHistory aggregates every completed purchase of a user.
type PurchaseHistory struct {
	TotalPurchases    int             `json:"totalPurchases"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	LastPurchase      *time.Time      `json:"lastPurchase,omitempty"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// Escalation holds the spend thresholds for automatic role promotion.
type Escalation struct {
	PremiumAt decimal.Decimal
	VIPAt     decimal.Decimal
}

// DefaultEscalation promotes customers at 10000 and premium customers at 50000.
var DefaultEscalation = Escalation{
	PremiumAt: decimal.NewFromInt(10000),
	VIPAt:     decimal.NewFromInt(50000),
}

// NewCustomer builds the record created at registration.
func NewCustomer(name, email, passwordHash string, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleCustomer,
		Status:       AccountStatusPendingVerification,
		PurchaseHistory: PurchaseHistory{
			TotalSpent:        decimal.Zero,
			AverageOrderValue: decimal.Zero,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsLocked reports whether the lockout window is still open at now.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockoutUntil != nil && u.LockoutUntil.After(now)
}

// CanPurchase reports whether the account may place orders at all.
func (u *User) CanPurchase(now time.Time) bool {
	return u.Status == AccountStatusActive && u.EmailVerified && !u.IsLocked(now)
}

// RegisterFailedLogin counts a failed login and opens a lockout window once
// maxAttempts is reached. It reports whether the account just became locked.
func (u *User) RegisterFailedLogin(now time.Time, maxAttempts int, lockout time.Duration) bool {
	u.LoginAttempts++
	u.UpdatedAt = now
	if maxAttempts <= 0 || u.LoginAttempts < maxAttempts {
		return false
	}

	until := now.Add(lockout)
	u.LockoutUntil = &until

	return true
}

// ResetLoginAttempts clears the failure counter and any expired lockout.
func (u *User) ResetLoginAttempts(now time.Time) {
	u.LoginAttempts = 0
	u.LockoutUntil = nil
	u.UpdatedAt = now
}

// RecordPurchase adds a completed purchase to the history and promotes the
// role when a spend threshold is crossed. Roles are never demoted. It returns
// the role held before the purchase was recorded.
func (u *User) RecordPurchase(amount decimal.Decimal, at time.Time, policy Escalation) Role {
	previous := u.Role

	h := &u.PurchaseHistory
	h.TotalPurchases++
	h.TotalSpent = h.TotalSpent.Add(amount)
	h.LastPurchase = &at
	h.AverageOrderValue = h.TotalSpent.Div(decimal.NewFromInt(int64(h.TotalPurchases))).Round(2)

	if u.Role == RoleCustomer && h.TotalSpent.GreaterThanOrEqual(policy.PremiumAt) {
		u.Role = RolePremium
	}
	if u.Role == RolePremium && h.TotalSpent.GreaterThanOrEqual(policy.VIPAt) {
		u.Role = RoleVIP
	}
	u.UpdatedAt = at

	return previous
}
