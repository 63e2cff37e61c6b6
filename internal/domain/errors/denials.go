package errors

import (
	"fmt"
	"strings"

	"orderguard/internal/errors"
)

// Gate names the authorization stage that rejected a request.
type Gate string

const (
	GateAccount    Gate = "account"
	GatePermission Gate = "permission"
	GateOwnership  Gate = "ownership"
	GateLimit      Gate = "limit"
	// GateTransition is the order lifecycle refusing a status change. It has
	// no Denial type; see RefusalGate.
	GateTransition Gate = "transition"
)

// Denial is an AppError produced by an authorization gate. It identifies the
// gate, what the gate required and what the actor actually had, and nothing
// about other users.
type Denial interface {
	AppError
	Gate() Gate
	Required() string
	Current() string
}

// AsDenial extracts a Denial from err's chain.
func AsDenial(err error) (Denial, bool) {
	var denial Denial
	if errors.As(err, &denial) {
		return denial, true
	}

	return nil, false
}

// RefusalGate reports the gate that refused err: the gate of a Denial, or
// GateTransition for a terminal or illegal status change.
func RefusalGate(err error) (Gate, bool) {
	if denial, ok := AsDenial(err); ok {
		return denial.Gate(), true
	}
	if errors.Is(err, ErrTerminalState) || errors.Is(err, ErrInvalidTransition) {
		return GateTransition, true
	}

	return "", false
}

// coded lends the HTTP code, error code and message of a sentinel to a
// structured error, and unwraps to that sentinel for errors.Is.
type coded struct {
	kind *BaseError
}

func (c coded) Unwrap() error {
	return c.kind
}

func (c coded) HTTPCode() int {
	return c.kind.HTTPCode()
}

func (c coded) ErrorCode() string {
	return c.kind.ErrorCode()
}

func (c coded) Message() string {
	return c.kind.Message()
}

// AccountDenialError is returned by the account gate.
type AccountDenialError struct {
	coded
	required string
	current  string
}

// NewAccountDenial builds an account-gate denial of the given kind, one of
// ErrAuthenticationRequired, ErrAccountInactive, ErrAccountLocked or ErrEmailUnverified.
func NewAccountDenial(kind *BaseError, required, current string) *AccountDenialError {
	return &AccountDenialError{coded: coded{kind: kind}, required: required, current: current}
}

func (e *AccountDenialError) Error() string {
	return fmt.Sprintf("%s (required %s, current %s)", e.kind.Message(), e.required, e.current)
}

func (e *AccountDenialError) Details() string {
	return e.Error()
}

func (e *AccountDenialError) Gate() Gate {
	return GateAccount
}

func (e *AccountDenialError) Required() string {
	return e.required
}

func (e *AccountDenialError) Current() string {
	return e.current
}

// PermissionDeniedError is returned when the permission matrix has no matching cell.
type PermissionDeniedError struct {
	coded
	Action    string
	Resources []string // Any one of these would have been sufficient.
	Role      string
}

// NewPermissionDenied builds a permission-gate denial.
func NewPermissionDenied(action string, resources []string, role string) *PermissionDeniedError {
	return &PermissionDeniedError{
		coded:     coded{kind: ErrPermissionDenied},
		Action:    action,
		Resources: resources,
		Role:      role,
	}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("role %q may not %s", e.Role, e.Required())
}

func (e *PermissionDeniedError) Details() string {
	return e.Error()
}

func (e *PermissionDeniedError) Gate() Gate {
	return GatePermission
}

func (e *PermissionDeniedError) Required() string {
	return e.Action + ":" + strings.Join(e.Resources, "|")
}

func (e *PermissionDeniedError) Current() string {
	return "role " + e.Role
}

// OwnershipViolationError is returned when a non-administrative actor targets
// a resource owned by someone else.
type OwnershipViolationError struct {
	coded
	ResourceType string
	ResourceID   string
	Role         string
}

// NewOwnershipViolation builds an ownership-gate denial.
func NewOwnershipViolation(resourceType, resourceID, role string) *OwnershipViolationError {
	return &OwnershipViolationError{
		coded:        coded{kind: ErrOwnershipViolation},
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Role:         role,
	}
}

func (e *OwnershipViolationError) Error() string {
	return fmt.Sprintf("%s %s is not owned by the caller", e.ResourceType, e.ResourceID)
}

func (e *OwnershipViolationError) Details() string {
	return e.Error()
}

func (e *OwnershipViolationError) Gate() Gate {
	return GateOwnership
}

func (e *OwnershipViolationError) Required() string {
	return "owner of " + e.ResourceType + " or administrative role"
}

func (e *OwnershipViolationError) Current() string {
	return "role " + e.Role
}

// LimitExceededError is returned when an observed value breaks a role limit.
// Limit is "false" for capability flags.
type LimitExceededError struct {
	coded
	LimitType string
	Limit     string
	Observed  string
	Role      string
}

// NewLimitExceeded builds a limit-gate denial.
func NewLimitExceeded(limitType, limit, observed, role string) *LimitExceededError {
	return &LimitExceededError{
		coded:     coded{kind: ErrLimitExceeded},
		LimitType: limitType,
		Limit:     limit,
		Observed:  observed,
		Role:      role,
	}
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s limit for role %q is %s, got %s", e.LimitType, e.Role, e.Limit, e.Observed)
}

func (e *LimitExceededError) Details() string {
	return e.Error()
}

func (e *LimitExceededError) Gate() Gate {
	return GateLimit
}

func (e *LimitExceededError) Required() string {
	return e.LimitType + " <= " + e.Limit
}

func (e *LimitExceededError) Current() string {
	return e.Observed
}

// InvalidTransitionError is returned when a transition is not legal from the current status.
type InvalidTransitionError struct {
	coded
	From string
	To   string
}

// NewInvalidTransition builds an InvalidTransitionError.
func NewInvalidTransition(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{coded: coded{kind: ErrInvalidTransition}, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Details() string {
	return e.Error()
}

// ResourceNotFoundError is returned when a referenced entity does not exist.
type ResourceNotFoundError struct {
	coded
	Type string
	ID   string
}

// NewResourceNotFound builds a ResourceNotFoundError.
func NewResourceNotFound(resourceType, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{coded: coded{kind: ErrResourceNotFound}, Type: resourceType, ID: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

func (e *ResourceNotFoundError) Details() string {
	return e.Error()
}
