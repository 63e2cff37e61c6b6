package errors

import (
	"net/http"

	"orderguard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so a sentinel still
// matches after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Gate denials
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"authentication is required",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"account is not active",
		"",
	)

	ErrAccountLocked = NewBaseError(
		http.StatusLocked,
		"ACCOUNT_LOCKED",
		"account is temporarily locked",
		"",
	)

	ErrEmailUnverified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_UNVERIFIED",
		"email address must be verified before purchasing",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"role is not allowed to perform this action",
		"",
	)

	ErrOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		"resource belongs to another user",
		"",
	)

	ErrLimitExceeded = NewBaseError(
		http.StatusUnprocessableEntity,
		"LIMIT_EXCEEDED",
		"purchase limit exceeded",
		"",
	)

	// Order lifecycle
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"order cannot move to the requested status",
		"",
	)

	ErrTerminalState = NewBaseError(
		http.StatusConflict,
		"TERMINAL_STATE",
		"order is in a terminal state",
		"",
	)

	ErrConcurrentModification = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_MODIFICATION",
		"order was modified concurrently, retry the request",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"not enough stock to fulfil the request",
		"",
	)

	ErrInvalidRefundAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFUND_AMOUNT",
		"refund amount must be positive and not exceed the order total",
		"",
	)

	// Coupons
	ErrCouponInvalid = NewBaseError(
		http.StatusBadRequest,
		"COUPON_INVALID",
		"coupon is not valid",
		"",
	)

	ErrCouponAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_USED",
		"coupon has already been used",
		"",
	)

	ErrCouponMinimumNotMet = NewBaseError(
		http.StatusUnprocessableEntity,
		"COUPON_MINIMUM_NOT_MET",
		"order subtotal is below the coupon minimum",
		"",
	)

	// Accounts
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password is too weak",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"password contains a forbidden word or pattern",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"refresh token is invalid or expired",
		"",
	)

	// General errors
	ErrResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"resource not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// DatabaseExecuteError represents a storage or connectivity failure. It is kept
// apart from policy errors so callers can tell "not allowed" from "unavailable".
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "storage is temporarily unavailable"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsInfrastructure reports whether err is a storage failure rather than a policy outcome.
func IsInfrastructure(err error) bool {
	var dbErr *DatabaseExecuteError

	return errors.As(err, &dbErr)
}
