package service

import (
	"context"

	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackagingOptionService provides packaging option catalog operations.
type PackagingOptionService interface {
	CreateOption(ctx context.Context, req dto.PackagingOptionRequest) (*model.PackagingOption, error)
	GetOptionByID(ctx context.Context, id primitive.ObjectID) (*model.PackagingOption, error)
	GetOptionsByProductCode(ctx context.Context, productCode string) ([]model.PackagingOption, error)
	GetAllOptions(ctx context.Context) ([]model.PackagingOption, error)
	UpdateOption(ctx context.Context, id primitive.ObjectID, req dto.PackagingOptionRequest) (*model.PackagingOption, error)
	DeleteOption(ctx context.Context, id primitive.ObjectID) error
}

// PackagingOptionServiceImpl implements PackagingOptionService. Every write
// verifies the referenced product exists, so options never dangle.
type PackagingOptionServiceImpl struct {
	optionRepo  repository.PackagingOptionRepositoryInterface
	productRepo repository.ProductRepositoryInterface
}

// NewPackagingOptionService creates a new packaging option service.
func NewPackagingOptionService(
	optionRepo repository.PackagingOptionRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
) PackagingOptionService {
	return &PackagingOptionServiceImpl{
		optionRepo:  optionRepo,
		productRepo: productRepo,
	}
}

// CreateOption adds a bundle option for an existing product. Returns
// model.ErrProductNotFound when the product code is unknown.
func (s *PackagingOptionServiceImpl) CreateOption(ctx context.Context, req dto.PackagingOptionRequest) (*model.PackagingOption, error) {
	productCode := model.NormalizeCode(req.ProductCode)

	exists, err := s.productRepo.ExistsByCode(ctx, productCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrProductNotFound
	}

	option := model.PackagingOption{
		ProductCode: productCode,
		BundleSize:  req.BundleSize,
		BundlePrice: req.BundlePrice,
	}
	if err := s.optionRepo.Insert(ctx, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

// GetOptionByID returns a single packaging option, or
// model.ErrPackagingOptionNotFound.
func (s *PackagingOptionServiceImpl) GetOptionByID(ctx context.Context, id primitive.ObjectID) (*model.PackagingOption, error) {
	option, err := s.optionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, model.ErrPackagingOptionNotFound
	}
	return option, nil
}

// GetOptionsByProductCode returns a product's bundle options, largest first.
// The product must exist; an existing product with no options returns an
// empty slice.
func (s *PackagingOptionServiceImpl) GetOptionsByProductCode(ctx context.Context, productCode string) ([]model.PackagingOption, error) {
	normalized := model.NormalizeCode(productCode)

	exists, err := s.productRepo.ExistsByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrProductNotFound
	}

	return s.optionRepo.FindByProductCode(ctx, normalized)
}

// GetAllOptions returns every packaging option in the catalog.
func (s *PackagingOptionServiceImpl) GetAllOptions(ctx context.Context) ([]model.PackagingOption, error) {
	return s.optionRepo.FindAll(ctx)
}

// UpdateOption replaces an existing option's product code, bundle size and
// price. Returns model.ErrPackagingOptionNotFound when the id is unknown and
// model.ErrProductNotFound when the new product code is.
func (s *PackagingOptionServiceImpl) UpdateOption(ctx context.Context, id primitive.ObjectID, req dto.PackagingOptionRequest) (*model.PackagingOption, error) {
	productCode := model.NormalizeCode(req.ProductCode)

	exists, err := s.productRepo.ExistsByCode(ctx, productCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrProductNotFound
	}

	option := model.PackagingOption{
		ID:          id,
		ProductCode: productCode,
		BundleSize:  req.BundleSize,
		BundlePrice: req.BundlePrice,
	}

	found, err := s.optionRepo.Update(ctx, option)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrPackagingOptionNotFound
	}
	return &option, nil
}

// DeleteOption removes a packaging option.
func (s *PackagingOptionServiceImpl) DeleteOption(ctx context.Context, id primitive.ObjectID) error {
	found, err := s.optionRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrPackagingOptionNotFound
	}
	return nil
}
