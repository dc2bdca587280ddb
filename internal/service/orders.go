package service

import (
	"context"
	"time"

	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/logger"
	"github.com/packline/packaging-service/internal/metrics"
	"github.com/packline/packaging-service/internal/money"
	"github.com/packline/packaging-service/internal/repository"
)

// OrderService provides order placement and retrieval.
type OrderService interface {
	// CreateOrder prices and persists an order from requested product lines.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	// GetOrderByID returns the itemized breakdown of a stored order.
	GetOrderByID(ctx context.Context, id string) (*dto.OrderResponse, error)
	// GetAllOrders returns the breakdowns of every stored order, oldest first.
	GetAllOrders(ctx context.Context) ([]dto.OrderResponse, error)
	// DeleteOrder removes an order and all its items.
	DeleteOrder(ctx context.Context, id string) error
}

// OrderServiceImpl implements OrderService. It orchestrates catalog lookups,
// the packaging calculation, atomic persistence and response assembly.
type OrderServiceImpl struct {
	orderRepo   repository.OrderRepositoryInterface
	productRepo repository.ProductRepositoryInterface
	optionRepo  repository.PackagingOptionRepositoryInterface
	calculator  PackagingCalculator
	assembler   *OrderAssembler
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	optionRepo repository.PackagingOptionRepositoryInterface,
	calculator PackagingCalculator,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		optionRepo:  optionRepo,
		calculator:  calculator,
		assembler:   NewOrderAssembler(),
	}
}

// CreateOrder validates every line against the catalog, computes the greedy
// packaging breakdown per line and persists the order in a single write.
// Any unknown product code aborts the whole order; nothing is persisted.
// Bundle prices are captured into the items, so later catalog edits never
// change what this order cost.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := model.Order{
		TotalPrice: money.Zero,
		Items:      []model.OrderItem{},
	}
	products := map[string]model.Product{}

	for _, line := range req.Items {
		code := model.NormalizeCode(line.ProductCode)

		product, ok := products[code]
		if !ok {
			found, err := s.productRepo.FindByCode(ctx, code)
			if err != nil {
				metrics.RecordOrderCreated("error", 0)
				return nil, err
			}
			if found == nil {
				metrics.RecordOrderCreated("rejected", 0)
				return nil, model.ErrProductNotFound
			}
			product = *found
			products[code] = product
		}

		options, err := s.optionRepo.FindByProductCode(ctx, code)
		if err != nil {
			metrics.RecordOrderCreated("error", 0)
			return nil, err
		}

		start := time.Now()
		breakdown := s.calculator.Calculate(line.Quantity, product.BasePrice, options)
		metrics.RecordPackagingCalculation(time.Since(start), "success")

		for _, pkg := range breakdown.Packages {
			order.Items = append(order.Items, model.OrderItem{
				ProductCode:     code,
				QuantityOrdered: line.Quantity,
				BundleSize:      pkg.BundleSize,
				BundleCount:     pkg.Count,
				PriceAtTime:     pkg.PricePerBundle,
			})
		}
		order.TotalPrice = order.TotalPrice.Add(breakdown.TotalPrice)
	}

	if err := s.orderRepo.Insert(ctx, &order); err != nil {
		metrics.RecordOrderCreated("error", len(req.Items))
		return nil, err
	}
	metrics.RecordOrderCreated("success", len(req.Items))

	log := logger.Logger()
	log.Info().
		Str("order_id", order.ID).
		Int("lines", len(req.Items)).
		Int("items", len(order.Items)).
		Str("total_price", order.TotalPrice.String()).
		Msg("Order created")

	response := s.assembler.Assemble(order, products)
	return &response, nil
}

// GetOrderByID loads an order and rebuilds its breakdown from the stored
// items. Returns model.ErrOrderNotFound when the id is unknown.
func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	products, err := s.lookupProducts(ctx, order.Items)
	if err != nil {
		return nil, err
	}

	response := s.assembler.Assemble(*order, products)
	return &response, nil
}

// GetAllOrders returns breakdowns for every stored order, oldest first.
func (s *OrderServiceImpl) GetAllOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		products, err := s.lookupProducts(ctx, order.Items)
		if err != nil {
			return nil, err
		}
		responses = append(responses, s.assembler.Assemble(order, products))
	}
	return responses, nil
}

// DeleteOrder removes an order together with its embedded items. Returns
// model.ErrOrderNotFound when the id is unknown.
func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id string) error {
	found, err := s.orderRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrOrderNotFound
	}

	log := logger.Logger()
	log.Info().
		Str("order_id", id).
		Msg("Order deleted")
	return nil
}

// lookupProducts fetches the catalog entries referenced by the given items.
// Products deleted since the order was placed are simply absent from the
// result; the assembler falls back to a placeholder name for them.
func (s *OrderServiceImpl) lookupProducts(ctx context.Context, items []model.OrderItem) (map[string]model.Product, error) {
	products := map[string]model.Product{}
	for _, item := range items {
		if _, done := products[item.ProductCode]; done {
			continue
		}
		product, err := s.productRepo.FindByCode(ctx, item.ProductCode)
		if err != nil {
			return nil, err
		}
		if product != nil {
			products[item.ProductCode] = *product
		}
	}
	return products, nil
}
