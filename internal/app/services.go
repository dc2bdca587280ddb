// Package app provides service initialization.
package app

import (
	"github.com/packline/packaging-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	ProductService service.ProductService
	OptionService  service.PackagingOptionService
	OrderService   service.OrderService
}

// InitializeServices wires the business services on top of the repositories.
func InitializeServices(db *DatabaseComponents) *ServiceComponents {
	calculator := service.NewGreedyCalculator()

	return &ServiceComponents{
		ProductService: service.NewProductService(db.ProductRepo, db.OptionRepo),
		OptionService:  service.NewPackagingOptionService(db.OptionRepo, db.ProductRepo),
		OrderService:   service.NewOrderService(db.OrderRepo, db.ProductRepo, db.OptionRepo, calculator),
	}
}
