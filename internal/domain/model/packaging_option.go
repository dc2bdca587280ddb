package model

import (
	"github.com/packline/packaging-service/internal/money"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackagingOption is a bundle a product can be purchased in, as an
// alternative to unit-by-unit pricing. A product may have any number of
// options; duplicate bundle sizes are legal.
//
// @Description Bundle size and price for a product
// @Example {"product_code": "CE", "bundle_size": 5, "bundle_price": 20.95}
type PackagingOption struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	// ProductCode references the owning product
	ProductCode string `bson:"product_code" json:"product_code" example:"CE"`
	// BundleSize is the number of items in the bundle (>= 2)
	BundleSize int `bson:"bundle_size" json:"bundle_size" example:"5"`
	// BundlePrice is the price of the whole bundle
	BundlePrice money.Amount `bson:"bundle_price" json:"bundle_price" swaggertype:"number" example:"20.95"`
}

// PricePerItem returns the effective single-item price inside the bundle at
// 4-decimal scale, half-up. Display only.
func (o PackagingOption) PricePerItem() string {
	return o.BundlePrice.PerItem(o.BundleSize)
}
