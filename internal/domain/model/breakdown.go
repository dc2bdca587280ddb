package model

import (
	"github.com/packline/packaging-service/internal/money"
)

// PackageCount is one line of a packaging breakdown: how many bundles of a
// given size are used and at what frozen price per bundle. BundleSize == 1
// means leftover individual units priced at the product's base price.
type PackageCount struct {
	BundleSize     int
	Count          int
	PricePerBundle money.Amount
}

// TotalItems returns the number of items covered by this entry.
func (p PackageCount) TotalItems() int {
	return p.BundleSize * p.Count
}

// TotalPrice returns count * price per bundle, exactly.
func (p PackageCount) TotalPrice() money.Amount {
	return p.PricePerBundle.MulInt(p.Count)
}

// PackagingBreakdown is the complete result of a packaging calculation for a
// single requested quantity. The sum of BundleSize*Count over Packages equals
// the requested quantity, except for the empty breakdown.
type PackagingBreakdown struct {
	Packages          []PackageCount
	TotalPrice        money.Amount
	TotalPackageCount int
}

// EmptyBreakdown returns the breakdown for nothing to pack: no packages,
// zero price, zero count.
func EmptyBreakdown() PackagingBreakdown {
	return PackagingBreakdown{
		Packages:          []PackageCount{},
		TotalPrice:        money.Zero,
		TotalPackageCount: 0,
	}
}
