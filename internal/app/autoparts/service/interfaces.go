package service

import (
	"context"

	"autoparts/internal/app/autoparts/entity"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductView, error)
	GetProduct(ctx context.Context, id int64) (*entity.ProductView, error)
	SaveProduct(ctx context.Context, product *entity.Product) (int64, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListManufacturers(ctx context.Context) ([]entity.Manufacturer, error)
	EnsureManufacturer(ctx context.Context, name string) (*entity.Manufacturer, error)
}

type RelationServiceInterface interface {
	ListRelated(ctx context.Context, productID int64) ([]entity.RelatedProduct, error)
	ListAvailableTargets(ctx context.Context, productID int64) ([]entity.ProductView, error)
	AddRelation(ctx context.Context, mainProductID, relatedProductID int64) (*entity.ProductRelation, error)
	RemoveRelation(ctx context.Context, relationID int64) error
}

type SalesServiceInterface interface {
	RecordSale(ctx context.Context, req *entity.RecordSaleRequest) (*entity.SalesRecord, error)
	ListSales(ctx context.Context, productID *int64) ([]entity.SaleView, error)
	ComputeStatistics(sales []entity.SaleView) entity.SalesStatistics
}

var (
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ RelationServiceInterface = (*RelationService)(nil)
	_ SalesServiceInterface    = (*SalesService)(nil)
)
