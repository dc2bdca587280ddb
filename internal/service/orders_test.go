//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/mocks"
	"github.com/packline/packaging-service/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest() (OrderService, *mocks.MockOrderRepositoryInterface, *mocks.MockProductRepositoryInterface, *mocks.MockPackagingOptionRepositoryInterface) {
	orderRepo := new(mocks.MockOrderRepositoryInterface)
	productRepo := new(mocks.MockProductRepositoryInterface)
	optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
	svc := NewOrderService(orderRepo, productRepo, optionRepo, NewGreedyCalculator())
	return svc, orderRepo, productRepo, optionRepo
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	cheese := &model.Product{Code: "CE", Name: "Cheese", BasePrice: money.MustParse("5.95")}
	cheeseOptions := []model.PackagingOption{
		{ProductCode: "CE", BundleSize: 5, BundlePrice: money.MustParse("20.95")},
	}

	t.Run("prices and persists a single line", func(t *testing.T) {
		svc, orderRepo, productRepo, optionRepo := newOrderServiceForTest()

		productRepo.On("FindByCode", mock.Anything, "CE").Return(cheese, nil)
		optionRepo.On("FindByProductCode", mock.Anything, "CE").Return(cheeseOptions, nil)
		orderRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*model.Order)
				order.ID = "generated-id"
				order.CreatedAt = time.Now().UTC()
			}).
			Return(nil)

		response, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{
			Items: []dto.OrderLineRequest{{ProductCode: "CE", Quantity: 10}},
		})

		require.NoError(t, err)
		assert.Equal(t, "generated-id", response.OrderID)
		assert.Equal(t, "41.90", response.TotalPrice.String())
		assert.Equal(t, 2, response.TotalPackages)
		require.Len(t, response.Products, 1)
		assert.Equal(t, "Cheese", response.Products[0].ProductName)
		assert.Equal(t, 10, response.Products[0].QuantityOrdered)

		orderRepo.AssertExpectations(t)
	})

	t.Run("normalizes product codes before lookup", func(t *testing.T) {
		svc, orderRepo, productRepo, optionRepo := newOrderServiceForTest()

		productRepo.On("FindByCode", mock.Anything, "CE").Return(cheese, nil)
		optionRepo.On("FindByProductCode", mock.Anything, "CE").Return(cheeseOptions, nil)
		orderRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{
			Items: []dto.OrderLineRequest{{ProductCode: " ce ", Quantity: 5}},
		})

		require.NoError(t, err)
		productRepo.AssertCalled(t, "FindByCode", mock.Anything, "CE")
	})

	t.Run("unknown product rejects the whole order", func(t *testing.T) {
		svc, orderRepo, productRepo, optionRepo := newOrderServiceForTest()

		productRepo.On("FindByCode", mock.Anything, "CE").Return(cheese, nil)
		productRepo.On("FindByCode", mock.Anything, "NOPE").Return(nil, nil)
		optionRepo.On("FindByProductCode", mock.Anything, "CE").Return(cheeseOptions, nil)

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{
			Items: []dto.OrderLineRequest{
				{ProductCode: "CE", Quantity: 5},
				{ProductCode: "NOPE", Quantity: 3},
			},
		})

		assert.ErrorIs(t, err, model.ErrProductNotFound)
		orderRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("captures bundle prices into order items", func(t *testing.T) {
		svc, orderRepo, productRepo, optionRepo := newOrderServiceForTest()

		var persisted *model.Order
		productRepo.On("FindByCode", mock.Anything, "CE").Return(cheese, nil)
		optionRepo.On("FindByProductCode", mock.Anything, "CE").Return(cheeseOptions, nil)
		orderRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*model.Order)
			}).
			Return(nil)

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{
			Items: []dto.OrderLineRequest{{ProductCode: "CE", Quantity: 7}},
		})

		require.NoError(t, err)
		require.NotNil(t, persisted)
		require.Len(t, persisted.Items, 2)
		assert.Equal(t, model.OrderItem{
			ProductCode: "CE", QuantityOrdered: 7, BundleSize: 5, BundleCount: 1,
			PriceAtTime: money.MustParse("20.95"),
		}, persisted.Items[0])
		assert.Equal(t, model.OrderItem{
			ProductCode: "CE", QuantityOrdered: 7, BundleSize: 1, BundleCount: 2,
			PriceAtTime: money.MustParse("5.95"),
		}, persisted.Items[1])
		assert.Equal(t, "32.85", persisted.TotalPrice.String())
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		svc, orderRepo, productRepo, optionRepo := newOrderServiceForTest()

		productRepo.On("FindByCode", mock.Anything, "CE").Return(cheese, nil)
		optionRepo.On("FindByProductCode", mock.Anything, "CE").Return(cheeseOptions, nil)
		orderRepo.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{
			Items: []dto.OrderLineRequest{{ProductCode: "CE", Quantity: 5}},
		})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestOrderService_CreateAndGetAgree(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, productRepo, optionRepo := newOrderServiceForTest()

	cheese := &model.Product{Code: "CE", Name: "Cheese", BasePrice: money.MustParse("5.95")}
	options := []model.PackagingOption{
		{ProductCode: "CE", BundleSize: 5, BundlePrice: money.MustParse("20.95")},
	}

	var persisted model.Order
	productRepo.On("FindByCode", mock.Anything, "CE").Return(cheese, nil)
	optionRepo.On("FindByProductCode", mock.Anything, "CE").Return(options, nil)
	orderRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*model.Order)
			order.ID = "round-trip"
			order.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
			persisted = *order
		}).
		Return(nil)

	created, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{
		Items: []dto.OrderLineRequest{{ProductCode: "CE", Quantity: 7}},
	})
	require.NoError(t, err)

	orderRepo.On("FindByID", mock.Anything, "round-trip").Return(&persisted, nil)

	loaded, err := svc.GetOrderByID(ctx, "round-trip")
	require.NoError(t, err)

	assert.Equal(t, created, loaded)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		svc, orderRepo, _, _ := newOrderServiceForTest()
		orderRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := svc.GetOrderByID(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("product deleted after order falls back to Unknown", func(t *testing.T) {
		svc, orderRepo, productRepo, _ := newOrderServiceForTest()

		order := &model.Order{
			ID:         "kept",
			TotalPrice: money.MustParse("20.95"),
			Items: []model.OrderItem{
				{ProductCode: "CE", QuantityOrdered: 5, BundleSize: 5, BundleCount: 1, PriceAtTime: money.MustParse("20.95")},
			},
		}
		orderRepo.On("FindByID", mock.Anything, "kept").Return(order, nil)
		productRepo.On("FindByCode", mock.Anything, "CE").Return(nil, nil)

		response, err := svc.GetOrderByID(ctx, "kept")
		require.NoError(t, err)
		assert.Equal(t, "Unknown", response.Products[0].ProductName)
		assert.Equal(t, "20.95", response.TotalPrice.String())
	})
}

func TestOrderService_GetAllOrders(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, productRepo, _ := newOrderServiceForTest()

	orders := []model.Order{
		{ID: "one", TotalPrice: money.MustParse("5.95"), Items: []model.OrderItem{
			{ProductCode: "CE", QuantityOrdered: 1, BundleSize: 1, BundleCount: 1, PriceAtTime: money.MustParse("5.95")},
		}},
		{ID: "two", TotalPrice: money.MustParse("11.90"), Items: []model.OrderItem{
			{ProductCode: "CE", QuantityOrdered: 2, BundleSize: 1, BundleCount: 2, PriceAtTime: money.MustParse("5.95")},
		}},
	}
	orderRepo.On("FindAll", mock.Anything).Return(orders, nil)
	productRepo.On("FindByCode", mock.Anything, "CE").
		Return(&model.Product{Code: "CE", Name: "Cheese", BasePrice: money.MustParse("5.95")}, nil)

	responses, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "one", responses[0].OrderID)
	assert.Equal(t, "two", responses[1].OrderID)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing order", func(t *testing.T) {
		svc, orderRepo, _, _ := newOrderServiceForTest()
		orderRepo.On("DeleteByID", mock.Anything, "gone").Return(true, nil)

		assert.NoError(t, svc.DeleteOrder(ctx, "gone"))
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, orderRepo, _, _ := newOrderServiceForTest()
		orderRepo.On("DeleteByID", mock.Anything, "missing").Return(false, nil)

		assert.ErrorIs(t, svc.DeleteOrder(ctx, "missing"), model.ErrOrderNotFound)
	})
}
