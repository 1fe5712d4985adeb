package mocks

import (
	"context"

	"autoparts/internal/app/autoparts/entity"

	"github.com/stretchr/testify/mock"
)

// MockManufacturerRepository мок для ManufacturerRepository
type MockManufacturerRepository struct {
	mock.Mock
}

func (m *MockManufacturerRepository) EnsureByName(ctx context.Context, name string) (*entity.Manufacturer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) GetByID(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) GetAll(ctx context.Context) ([]entity.Manufacturer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Manufacturer), args.Error(1)
}

// MockProductRepository мок для ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*entity.ProductView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductView), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductView), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteWithRelations(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRelationRepository мок для RelationRepository
type MockRelationRepository struct {
	mock.Mock
}

func (m *MockRelationRepository) Create(ctx context.Context, relation *entity.ProductRelation) error {
	args := m.Called(ctx, relation)
	return args.Error(0)
}

func (m *MockRelationRepository) GetByMainProduct(ctx context.Context, mainProductID int64) ([]entity.RelatedProduct, error) {
	args := m.Called(ctx, mainProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RelatedProduct), args.Error(1)
}

func (m *MockRelationRepository) GetAvailableTargets(ctx context.Context, productID int64) ([]entity.ProductView, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductView), args.Error(1)
}

func (m *MockRelationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSalesRepository мок для SalesRepository
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSalesRepository) GetAll(ctx context.Context, productID *int64) ([]entity.SaleView, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SaleView), args.Error(1)
}
