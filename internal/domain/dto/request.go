// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication. Responses are always built from
// server-side entities, never echoed from request DTOs.
package dto

import (
	"github.com/packline/packaging-service/internal/money"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateProductRequest is the JSON body for creating a catalog product.
//
// @Description Request to create a product
// @Example {"code": "CE", "name": "Cheese", "base_price": 5.95}
type CreateProductRequest struct {
	// Code is the unique product code, stored upper-case.
	Code string `json:"code" binding:"required,min=2,max=10" example:"CE"`
	// Name is the display name.
	Name string `json:"name" binding:"required,min=2,max=100" example:"Cheese"`
	// BasePrice is the single-unit price. Must be greater than 0.
	BasePrice money.Amount `json:"base_price" binding:"required" swaggertype:"number" example:"5.95"`
} // @name CreateProductRequest

// Validate performs custom validation beyond binding tags.
func (r *CreateProductRequest) Validate() error {
	if !r.BasePrice.IsPositive() {
		return &ValidationError{Field: "base_price", Message: "must be greater than 0"}
	}
	return nil
}

// UpdateProductRequest is the JSON body for updating a product's mutable
// fields. The code is immutable and taken from the path.
type UpdateProductRequest struct {
	Name      string       `json:"name" binding:"required,min=2,max=100"`
	BasePrice money.Amount `json:"base_price" binding:"required" swaggertype:"number"`
} // @name UpdateProductRequest

// Validate performs custom validation beyond binding tags.
func (r *UpdateProductRequest) Validate() error {
	if !r.BasePrice.IsPositive() {
		return &ValidationError{Field: "base_price", Message: "must be greater than 0"}
	}
	return nil
}

// PackagingOptionRequest is the JSON body for creating or updating a
// packaging option.
//
// @Description Request to create or update a packaging option
// @Example {"product_code": "CE", "bundle_size": 5, "bundle_price": 20.95}
type PackagingOptionRequest struct {
	ProductCode string `json:"product_code" binding:"required,min=2,max=10" example:"CE"`
	// BundleSize is the number of items per bundle. Must be at least 2;
	// size 1 is the implicit individual-unit fallback.
	BundleSize  int          `json:"bundle_size" binding:"required,gte=2" example:"5"`
	BundlePrice money.Amount `json:"bundle_price" binding:"required" swaggertype:"number" example:"20.95"`
} // @name PackagingOptionRequest

// Validate performs custom validation beyond binding tags.
func (r *PackagingOptionRequest) Validate() error {
	if !r.BundlePrice.IsPositive() {
		return &ValidationError{Field: "bundle_price", Message: "must be greater than 0"}
	}
	return nil
}

// OrderLineRequest is one requested (product, quantity) pair of an order.
type OrderLineRequest struct {
	ProductCode string `json:"product_code" binding:"required,min=1,max=20" example:"CE"`
	// Quantity must be between 1 and 10000.
	Quantity int `json:"quantity" binding:"required,gt=0,lte=10000" example:"10"`
} // @name OrderLineRequest

// CreateOrderRequest is the JSON body for creating an order.
//
// @Description Request to create an order from product lines
// @Example {"items": [{"product_code": "CE", "quantity": 10}]}
type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
} // @name CreateOrderRequest

// Validate performs custom validation beyond binding tags.
func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "must contain at least one line"}
	}
	for _, line := range r.Items {
		if line.Quantity <= 0 {
			return &ValidationError{Field: "quantity", Message: "must be a positive integer"}
		}
	}
	return nil
}
