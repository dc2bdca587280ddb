// Package i18n provides internationalization support for the packaging service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound indicates an unknown product code.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyOrderNotFound indicates an unknown order id.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyPackagingOptionNotFound indicates an unknown packaging option id.
	ErrKeyPackagingOptionNotFound = "error.packaging_option_not_found"
	// ErrKeyProductExists indicates a duplicate product code.
	ErrKeyProductExists = "error.product_exists"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationQuantity indicates an invalid order line quantity.
	ErrKeyValidationQuantity = "error.validation.quantity"
)

// Success message translation keys.
const (
	// SuccessKeyOrderCreated indicates successful order creation.
	SuccessKeyOrderCreated = "success.order_created"
)
