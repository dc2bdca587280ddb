// Package model defines the core domain entities for the packaging service.
package model

import (
	"strings"

	"github.com/packline/packaging-service/internal/money"
)

// Product is a catalog product identified by its code.
//
// @Description Catalog product with unit pricing
// @Example {"code": "CE", "name": "Cheese", "base_price": 5.95}
type Product struct {
	// Code is the unique, upper-case product code
	Code string `bson:"_id" json:"code" example:"CE"`
	// Name is the display name of the product
	Name string `bson:"name" json:"name" example:"Cheese"`
	// BasePrice is the price of a single unit
	BasePrice money.Amount `bson:"base_price" json:"base_price" swaggertype:"number" example:"5.95"`
}

// NormalizeCode canonicalizes a product code: trimmed and upper-cased.
// Codes are normalized once at the boundary so lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
