package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
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

// WithDetails returns a copy of the error carrying details.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so copies made by WithDetails
// compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "user not found", "")
	ErrUserBlocked  = NewBaseError(http.StatusForbidden, "USER_BLOCKED", "this account has been blocked", "")
	ErrInvalidRole  = NewBaseError(http.StatusBadRequest, "INVALID_ROLE", "unknown role", "")

	// Authentication-related errors
	ErrOTPInvalid          = NewBaseError(http.StatusUnauthorized, "OTP_INVALID", "the code is invalid or has expired", "")
	ErrOTPTooManyAttempts  = NewBaseError(http.StatusTooManyRequests, "OTP_TOO_MANY_ATTEMPTS", "too many attempts, request a new code", "")
	ErrOTPCooldown         = NewBaseError(http.StatusTooManyRequests, "OTP_COOLDOWN", "please wait before requesting another code", "")
	ErrOTPSendFailed       = NewBaseError(http.StatusBadGateway, "OTP_SEND_FAILED", "the code could not be delivered", "")
	ErrRefreshTokenInvalid = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "invalid or expired refresh token", "")
	ErrUnauthorized        = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", "")

	// Validation-related errors
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", "")

	// Address-related errors
	ErrAddressNotFound           = NewBaseError(http.StatusNotFound, "ADDRESS_NOT_FOUND", "address not found", "")
	ErrAddressOwnershipViolation = NewBaseError(http.StatusForbidden, "ADDRESS_OWNERSHIP_VIOLATION", "you do not have access to this address", "")
	ErrAddressOutOfRange         = NewBaseError(http.StatusUnprocessableEntity, "ADDRESS_OUT_OF_RANGE", "the address is outside the delivery area", "")

	// Catalog-related errors
	ErrProductNotFound     = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found", "")
	ErrProductUnavailable  = NewBaseError(http.StatusUnprocessableEntity, "PRODUCT_UNAVAILABLE", "the product is not available for sale", "")
	ErrVariantNotFound     = NewBaseError(http.StatusNotFound, "VARIANT_NOT_FOUND", "product variant not found", "")
	ErrVariantRequired     = NewBaseError(http.StatusBadRequest, "VARIANT_REQUIRED", "a product needs at least one variant", "")
	ErrLastVariant         = NewBaseError(http.StatusConflict, "LAST_VARIANT", "the last variant of a product cannot be removed", "")
	ErrInvalidVariant      = NewBaseError(http.StatusBadRequest, "INVALID_VARIANT", "variant price or stock is invalid", "")
	ErrDuplicateSKU        = NewBaseError(http.StatusConflict, "DUPLICATE_SKU", "a product with this SKU already exists", "")
	ErrDuplicateSlug       = NewBaseError(http.StatusConflict, "DUPLICATE_SLUG", "this slug is already in use", "")
	ErrBrandNotFound       = NewBaseError(http.StatusNotFound, "BRAND_NOT_FOUND", "brand not found", "")
	ErrCategoryNotFound    = NewBaseError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found", "")
	ErrCategoryInUse       = NewBaseError(http.StatusConflict, "CATEGORY_IN_USE", "the category still has products or subcategories", "")
	ErrBrandInUse          = NewBaseError(http.StatusConflict, "BRAND_IN_USE", "the brand still has products", "")
	ErrImageNotFound       = NewBaseError(http.StatusNotFound, "IMAGE_NOT_FOUND", "image not found", "")
	ErrImageUploadFailed   = NewBaseError(http.StatusBadGateway, "IMAGE_UPLOAD_FAILED", "the image could not be stored", "")
	ErrUnsupportedImage    = NewBaseError(http.StatusUnsupportedMediaType, "UNSUPPORTED_IMAGE", "only JPEG, PNG and WebP images are accepted", "")
	ErrInvalidCategoryTree = NewBaseError(http.StatusBadRequest, "INVALID_CATEGORY_PARENT", "a category cannot be its own parent", "")

	// Cart-related errors
	ErrCartEmpty        = NewBaseError(http.StatusUnprocessableEntity, "CART_EMPTY", "the cart is empty", "")
	ErrCartItemNotFound = NewBaseError(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "cart item not found", "")
	ErrCartOwnerMissing = NewBaseError(http.StatusBadRequest, "CART_OWNER_MISSING", "sign in or provide a cart session", "")
	ErrOutOfStock       = NewBaseError(http.StatusConflict, "OUT_OF_STOCK", "not enough stock for the requested quantity", "")

	// Order-related errors
	ErrOrderNotFound         = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "order not found", "")
	ErrInvalidStatusChange   = NewBaseError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "the order cannot move to that status", "")
	ErrOrderNotCancellable   = NewBaseError(http.StatusConflict, "ORDER_NOT_CANCELLABLE", "only pending orders can be cancelled", "")
	ErrShippingCostChanged   = NewBaseError(http.StatusConflict, "SHIPPING_COST_CHANGED", "the shipping cost has changed, please review your order", "")
	ErrInvalidQRCode         = NewBaseError(http.StatusBadRequest, "INVALID_QR_CODE", "the QR code is not a valid order code", "")
	ErrOrderNotRefundable    = NewBaseError(http.StatusConflict, "ORDER_NOT_REFUNDABLE", "only paid orders can be refunded", "")
	ErrOrderFullyRefunded    = NewBaseError(http.StatusConflict, "ORDER_FULLY_REFUNDED", "the order has already been fully refunded", "")
	ErrRefundAmountExceeded  = NewBaseError(http.StatusUnprocessableEntity, "REFUND_AMOUNT_EXCEEDED", "the refund exceeds the remaining refundable amount", "")
	ErrRefundRestockExceeded = NewBaseError(http.StatusUnprocessableEntity, "REFUND_RESTOCK_EXCEEDED", "cannot restock more units than were sold", "")
	ErrOrderItemNotFound     = NewBaseError(http.StatusNotFound, "ORDER_ITEM_NOT_FOUND", "order item not found", "")
	ErrInvalidRefundAmount   = NewBaseError(http.StatusBadRequest, "INVALID_REFUND_AMOUNT", "a partial refund needs a positive amount", "")
	ErrRestockItemsRequired  = NewBaseError(http.StatusBadRequest, "RESTOCK_ITEMS_REQUIRED", "a partial refund with restock must list the items to restock", "")

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "device not found", "")

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed", "")

	// General errors
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
	ErrForbidden     = NewBaseError(http.StatusForbidden, "FORBIDDEN", "access denied", "")
	ErrNotFound      = NewBaseError(http.StatusNotFound, "NOT_FOUND", "resource not found", "")
	ErrConflict      = NewBaseError(http.StatusConflict, "CONFLICT", "resource conflict", "")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
