package dto

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/money"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"not_found"`
	Message   string    `json:"message,omitempty" example:"Product not found"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	default:
		return ErrCodeInternal
	}
}

// ProductResponse is the API shape of a catalog product.
type ProductResponse struct {
	Code      string       `json:"code" example:"CE"`
	Name      string       `json:"name" example:"Cheese"`
	BasePrice money.Amount `json:"base_price" swaggertype:"number" example:"5.95"`
} // @name ProductResponse

// FromProduct maps a catalog entity to its response shape.
func FromProduct(p model.Product) ProductResponse {
	return ProductResponse{
		Code:      p.Code,
		Name:      p.Name,
		BasePrice: p.BasePrice,
	}
}

// PackagingOptionResponse is the API shape of a packaging option. The
// per-item price is a 4-decimal display figure, never used for totals.
type PackagingOptionResponse struct {
	ID           string       `json:"id"`
	ProductCode  string       `json:"product_code" example:"CE"`
	BundleSize   int          `json:"bundle_size" example:"5"`
	BundlePrice  money.Amount `json:"bundle_price" swaggertype:"number" example:"20.95"`
	PricePerItem json.Number  `json:"price_per_item" swaggertype:"number" example:"4.19"`
} // @name PackagingOptionResponse

// FromPackagingOption maps a packaging option entity to its response shape.
func FromPackagingOption(o model.PackagingOption) PackagingOptionResponse {
	return PackagingOptionResponse{
		ID:           o.ID.Hex(),
		ProductCode:  o.ProductCode,
		BundleSize:   o.BundleSize,
		BundlePrice:  o.BundlePrice,
		PricePerItem: json.Number(o.PricePerItem()),
	}
}

// PackageBreakdown is one package line of an order response.
type PackageBreakdown struct {
	BundleSize     int          `json:"bundle_size" example:"5"`
	BundleCount    int          `json:"bundle_count" example:"2"`
	PricePerBundle money.Amount `json:"price_per_bundle" swaggertype:"number" example:"20.95"`
	TotalPrice     money.Amount `json:"total_price" swaggertype:"number" example:"41.90"`
	// Description is a human-readable summary, e.g. "2 packages of 5 items ($20.95 each)"
	Description string `json:"description" example:"2 packages of 5 items ($20.95 each)"`
} // @name PackageBreakdown

// ProductBreakdown groups an order's packages for a single product.
type ProductBreakdown struct {
	ProductCode     string             `json:"product_code" example:"CE"`
	ProductName     string             `json:"product_name" example:"Cheese"`
	QuantityOrdered int                `json:"quantity_ordered" example:"10"`
	Subtotal        money.Amount       `json:"subtotal" swaggertype:"number" example:"41.90"`
	Packages        []PackageBreakdown `json:"packages"`
} // @name ProductBreakdown

// OrderResponse is the itemized breakdown of an order, identical in shape
// and values whether the order was just created or loaded from storage.
type OrderResponse struct {
	OrderID       string             `json:"order_id"`
	CreatedAt     time.Time          `json:"created_at"`
	TotalPrice    money.Amount       `json:"total_price" swaggertype:"number" example:"41.90"`
	TotalPackages int                `json:"total_packages" example:"2"`
	Products      []ProductBreakdown `json:"products"`
} // @name OrderResponse
