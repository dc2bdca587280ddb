// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/packline/packaging-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepositoryInterface defines catalog product data access.
// Lookups return (nil, nil) when the product does not exist; mapping absence
// to a domain error is the service layer's concern.
type ProductRepositoryInterface interface {
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Insert(ctx context.Context, product model.Product) error
	Update(ctx context.Context, product model.Product) (bool, error)
	DeleteByCode(ctx context.Context, code string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// PackagingOptionRepositoryInterface defines packaging option data access.
type PackagingOptionRepositoryInterface interface {
	FindByProductCode(ctx context.Context, productCode string) ([]model.PackagingOption, error)
	FindAll(ctx context.Context) ([]model.PackagingOption, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackagingOption, error)
	Insert(ctx context.Context, option *model.PackagingOption) error
	Update(ctx context.Context, option model.PackagingOption) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByProductCode(ctx context.Context, productCode string) (int64, error)
}

// OrderRepositoryInterface defines order data access. Insert assigns the
// order's identity and creation timestamp and persists the order together
// with all its embedded items in one atomic write.
type OrderRepositoryInterface interface {
	Insert(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// LogsRepositoryInterface defines request log persistence.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
}
