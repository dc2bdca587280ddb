package service

import (
	"context"

	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/repository"
)

// ProductService provides catalog product operations.
type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	GetProductByCode(ctx context.Context, code string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, code string, req dto.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, code string) error
}

// ProductServiceImpl implements ProductService on top of the catalog
// repositories. Product codes are normalized before every lookup or write,
// so "ce", " CE " and "CE" address the same product.
type ProductServiceImpl struct {
	productRepo repository.ProductRepositoryInterface
	optionRepo  repository.PackagingOptionRepositoryInterface
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepositoryInterface,
	optionRepo repository.PackagingOptionRepositoryInterface,
) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		optionRepo:  optionRepo,
	}
}

// CreateProduct adds a new product to the catalog. Returns
// model.ErrProductAlreadyExists when the normalized code is taken.
func (s *ProductServiceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	product := model.Product{
		Code:      model.NormalizeCode(req.Code),
		Name:      req.Name,
		BasePrice: req.BasePrice,
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByCode returns the product with the given code, or
// model.ErrProductNotFound.
func (s *ProductServiceImpl) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	product, err := s.productRepo.FindByCode(ctx, model.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// GetAllProducts returns the full catalog.
func (s *ProductServiceImpl) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// UpdateProduct replaces a product's name and base price. The code is
// immutable. Returns model.ErrProductNotFound when the product is absent.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, code string, req dto.UpdateProductRequest) (*model.Product, error) {
	product := model.Product{
		Code:      model.NormalizeCode(code),
		Name:      req.Name,
		BasePrice: req.BasePrice,
	}

	found, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrProductNotFound
	}
	return &product, nil
}

// DeleteProduct removes a product and all its packaging options. Orders
// already placed keep their captured snapshots and are not touched.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, code string) error {
	normalized := model.NormalizeCode(code)

	found, err := s.productRepo.DeleteByCode(ctx, normalized)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrProductNotFound
	}

	_, err = s.optionRepo.DeleteByProductCode(ctx, normalized)
	return err
}
