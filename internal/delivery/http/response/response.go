// Package response writes the JSON envelopes every endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "orderguard/internal/delivery/context"
	domainerrors "orderguard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "LIMIT_EXCEEDED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (never for 5xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// DenialDetails tells the caller which gate refused the request and why.
type DenialDetails struct {
	Gate     domainerrors.Gate `json:"gate"`
	Required string            `json:"required"`
	Current  string            `json:"current"`
}

// NewDenialDetails extracts the public part of a denial.
func NewDenialDetails(denial domainerrors.Denial) *DenialDetails {
	return &DenialDetails{
		Gate:     denial.Gate(),
		Required: denial.Required(),
		Current:  denial.Current(),
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// NoContent answers 204 without a body.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Server errors never carry details; 401 and 403 only carry denial details.
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		if _, ok := details.(*DenialDetails); !ok {
			details = nil
		}
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		"Internal server error, please try again later", nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
