// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPackagingOptionRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackagingOptionRepositoryInterface) FindByProductCode(ctx context.Context, productCode string) ([]model.PackagingOption, error) {
	args := m.Called(ctx, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackagingOption), args.Error(1)
}

func (m *MockPackagingOptionRepositoryInterface) FindAll(ctx context.Context) ([]model.PackagingOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackagingOption), args.Error(1)
}

func (m *MockPackagingOptionRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PackagingOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackagingOption), args.Error(1)
}

func (m *MockPackagingOptionRepositoryInterface) Insert(ctx context.Context, option *model.PackagingOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockPackagingOptionRepositoryInterface) Update(ctx context.Context, option model.PackagingOption) (bool, error) {
	args := m.Called(ctx, option)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackagingOptionRepositoryInterface) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackagingOptionRepositoryInterface) DeleteByProductCode(ctx context.Context, productCode string) (int64, error) {
	args := m.Called(ctx, productCode)
	return args.Get(0).(int64), args.Error(1)
}
