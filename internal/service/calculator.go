// Package service contains the business logic of the packaging service.
package service

import (
	"sort"

	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/money"
)

// PackagingCalculator computes the bundle breakdown for a requested quantity.
type PackagingCalculator interface {
	// Calculate maps (quantity, base unit price, bundle options) to an
	// ordered breakdown of packages plus total price. Pure: no side effects,
	// deterministic for identical inputs.
	Calculate(quantity int, basePrice money.Amount, options []model.PackagingOption) model.PackagingBreakdown
}

// GreedyCalculator implements PackagingCalculator with greedy largest-first
// packing: always consume the largest bundle size that still fits the
// remaining quantity, then smaller bundles, then individual units.
//
// This is a heuristic, not a true minimal-package optimum; combinations of
// smaller bundles can occasionally beat a larger bundle plus singles. The
// greedy decomposition is what persisted order prices were computed with,
// so it must not be replaced by an exact search.
type GreedyCalculator struct{}

// NewGreedyCalculator creates a GreedyCalculator.
func NewGreedyCalculator() *GreedyCalculator {
	return &GreedyCalculator{}
}

// Calculate computes the greedy packaging breakdown.
//
// A quantity <= 0 means nothing to pack and yields the empty breakdown; it
// is not an error, upstream validation already forbids it on requests.
// Options are evaluated in descending bundle-size order via a stable sort,
// so ties between duplicate bundle sizes resolve by input order: the first
// option of a size consumes everything divisible by it and later duplicates
// contribute nothing.
func (c *GreedyCalculator) Calculate(quantity int, basePrice money.Amount, options []model.PackagingOption) model.PackagingBreakdown {
	if quantity <= 0 {
		return model.EmptyBreakdown()
	}

	sorted := make([]model.PackagingOption, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BundleSize > sorted[j].BundleSize
	})

	packages := []model.PackageCount{}
	remaining := quantity
	totalPrice := money.Zero
	totalPackageCount := 0

	for _, option := range sorted {
		if remaining < option.BundleSize {
			continue
		}
		count := remaining / option.BundleSize
		remaining = remaining % option.BundleSize

		packages = append(packages, model.PackageCount{
			BundleSize:     option.BundleSize,
			Count:          count,
			PricePerBundle: option.BundlePrice,
		})
		totalPrice = totalPrice.Add(option.BundlePrice.MulInt(count))
		totalPackageCount += count
	}

	if remaining > 0 {
		// Leftover units are sold individually at the base price.
		packages = append(packages, model.PackageCount{
			BundleSize:     1,
			Count:          remaining,
			PricePerBundle: basePrice,
		})
		totalPrice = totalPrice.Add(basePrice.MulInt(remaining))
		totalPackageCount += remaining
	}

	return model.PackagingBreakdown{
		Packages:          packages,
		TotalPrice:        totalPrice,
		TotalPackageCount: totalPackageCount,
	}
}
