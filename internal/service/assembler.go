package service

import (
	"fmt"

	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/money"
)

// unknownProductName is shown when an order references a product that has
// since been removed from the catalog.
const unknownProductName = "Unknown"

// OrderAssembler builds order responses from persisted orders. Creation and
// retrieval both go through Assemble, so the two paths can never disagree
// about the shape or the numbers.
type OrderAssembler struct{}

// NewOrderAssembler creates an OrderAssembler.
func NewOrderAssembler() *OrderAssembler {
	return &OrderAssembler{}
}

// Assemble converts an order and a catalog snapshot into the itemized API
// response. All prices come from the order's frozen items; the catalog only
// contributes display names. Products absent from the snapshot render as
// "Unknown" rather than failing the whole response.
func (a *OrderAssembler) Assemble(order model.Order, products map[string]model.Product) dto.OrderResponse {
	// Group items per product, preserving first-appearance order.
	codes := []string{}
	grouped := map[string][]model.OrderItem{}
	for _, item := range order.Items {
		if _, seen := grouped[item.ProductCode]; !seen {
			codes = append(codes, item.ProductCode)
		}
		grouped[item.ProductCode] = append(grouped[item.ProductCode], item)
	}

	totalPackages := 0
	productBreakdowns := make([]dto.ProductBreakdown, 0, len(codes))
	for _, code := range codes {
		items := grouped[code]

		name := unknownProductName
		if product, ok := products[code]; ok {
			name = product.Name
		}

		quantity := 0
		subtotal := money.Zero
		packages := make([]dto.PackageBreakdown, 0, len(items))
		for _, item := range items {
			lineTotal := item.TotalPrice()
			packages = append(packages, dto.PackageBreakdown{
				BundleSize:     item.BundleSize,
				BundleCount:    item.BundleCount,
				PricePerBundle: item.PriceAtTime,
				TotalPrice:     lineTotal,
				Description:    formatPackageDescription(item.BundleCount, item.BundleSize, item.PriceAtTime),
			})
			quantity += item.BundleSize * item.BundleCount
			subtotal = subtotal.Add(lineTotal)
			totalPackages += item.BundleCount
		}

		productBreakdowns = append(productBreakdowns, dto.ProductBreakdown{
			ProductCode:     code,
			ProductName:     name,
			QuantityOrdered: quantity,
			Subtotal:        subtotal,
			Packages:        packages,
		})
	}

	return dto.OrderResponse{
		OrderID:       order.ID,
		CreatedAt:     order.CreatedAt,
		TotalPrice:    order.TotalPrice,
		TotalPackages: totalPackages,
		Products:      productBreakdowns,
	}
}

// formatPackageDescription renders one breakdown line for humans, e.g.
// "2 packages of 5 items ($20.95 each)" or "1 package of 1 item ($5.95 each)".
func formatPackageDescription(count, size int, price money.Amount) string {
	return fmt.Sprintf("%d package%s of %d item%s ($%s each)",
		count, plural(count), size, plural(size), price.String())
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
