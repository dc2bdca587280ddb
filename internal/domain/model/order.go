package model

import (
	"time"

	"github.com/packline/packaging-service/internal/money"
)

// Order is a persisted customer order. It exclusively owns its items: they
// are embedded in the order document, so an insert is atomic and deleting
// the order deletes every item with it.
type Order struct {
	ID         string       `bson:"_id" json:"id"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
	TotalPrice money.Amount `bson:"total_price" json:"total_price" swaggertype:"number"`
	Items      []OrderItem  `bson:"items" json:"items"`
}

// OrderItem is one package-count line of an order. ProductCode is a
// denormalized snapshot, not a live reference: PriceAtTime is frozen at
// order creation and never changes when the catalog does. A single request
// line decomposes into one or more items sharing the same product code and
// requested quantity.
type OrderItem struct {
	ProductCode     string       `bson:"product_code" json:"product_code"`
	QuantityOrdered int          `bson:"quantity_ordered" json:"quantity_ordered"`
	BundleSize      int          `bson:"bundle_size" json:"bundle_size"`
	BundleCount     int          `bson:"bundle_count" json:"bundle_count"`
	PriceAtTime     money.Amount `bson:"price_at_time" json:"price_at_time" swaggertype:"number"`
}

// TotalPrice returns the frozen price of this item line: PriceAtTime * BundleCount.
func (i OrderItem) TotalPrice() money.Amount {
	return i.PriceAtTime.MulInt(i.BundleCount)
}
