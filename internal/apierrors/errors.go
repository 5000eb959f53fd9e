package apierrors

import (
	"context"
	"fmt"
	"net/http"

	"gepe-server/internal/observability"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// Machine-readable error codes returned alongside the HTTP status.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeNameExists      = "NAME_EXISTS"
	CodeSlugExists      = "SLUG_EXISTS"
	CodeCategoryInUse   = "CATEGORY_IN_USE"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"

	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeInvalidStage      = "INVALID_STAGE"
	CodePaymentNotFound   = "PAYMENT_NOT_FOUND"
	CodePaymentsDisabled  = "PAYMENTS_DISABLED"
	CodeRefundNotAllowed  = "REFUND_NOT_ALLOWED"
	CodeRefundTooLarge    = "REFUND_TOO_LARGE"
	CodeEmptyOrder        = "EMPTY_ORDER"
	CodeAddressNotFound   = "ADDRESS_NOT_FOUND"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeCartItemNotFound  = "CART_ITEM_NOT_FOUND"
	CodeAlreadySubscribed = "ALREADY_SUBSCRIBED"
	CodeEmailExists       = "EMAIL_EXISTS"
	CodeEmailNotFound     = "EMAIL_NOT_FOUND"

	CodePaymentProviderError = "PAYMENT_PROVIDER_ERROR"
	CodeEmailServiceError    = "EMAIL_SERVICE_ERROR"
	CodeUploadServiceError   = "UPLOAD_SERVICE_ERROR"
	CodeEmailNotConfigured   = "EMAIL_NOT_CONFIGURED"
	CodeUploadsDisabled      = "UPLOADS_DISABLED"
)

// APIError carries the HTTP status, machine-readable code and user-facing
// message for an error response. Handlers should not build these by hand;
// use the constructors or MapError.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// ServiceUnavailable creates a 503 error and logs the internal cause
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	logger.Error(context.Background(), "service unavailable", internalErr)
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(internalErr error) *APIError {
	logger.Error(context.Background(), "internal error", internalErr)
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
	}
}
