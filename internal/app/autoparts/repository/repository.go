package repository

import (
	"context"
	"errors"
	"strings"

	"autoparts/internal/app/autoparts/entity"

	"gorm.io/gorm"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrProductNotFound      = errors.New("product not found")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrDuplicateRelation    = errors.New("relation already exists")
	ErrSelfRelation         = errors.New("product cannot relate to itself")
)

type ManufacturerRepository interface {
	EnsureByName(ctx context.Context, name string) (*entity.Manufacturer, error)
	GetByID(ctx context.Context, id int64) (*entity.Manufacturer, error)
	GetAll(ctx context.Context) ([]entity.Manufacturer, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.ProductView, error)
	GetAll(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductView, error)
	Update(ctx context.Context, product *entity.Product) error
	DeleteWithRelations(ctx context.Context, id int64) error
}

type RelationRepository interface {
	Create(ctx context.Context, relation *entity.ProductRelation) error
	GetByMainProduct(ctx context.Context, mainProductID int64) ([]entity.RelatedProduct, error)
	GetAvailableTargets(ctx context.Context, productID int64) ([]entity.ProductView, error)
	Delete(ctx context.Context, id int64) error
}

type SalesRepository interface {
	Create(ctx context.Context, record *entity.SalesRecord) error
	GetAll(ctx context.Context, productID *int64) ([]entity.SaleView, error)
}

// translateConstraintError переводит нарушения ограничений схемы
// (UNIQUE, CHECK, FOREIGN KEY) в ошибки репозитория
// Это ожидаемые, восстановимые исходы, а не фатальные сбои хранилища
func translateConstraintError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRelation
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicateRelation
	// Только именованный CHECK самосвязи; прочие CHECK (цена, количество)
	// проходят как есть
	case strings.Contains(msg, "CHECK constraint failed: chk_no_self_relation"):
		return ErrSelfRelation
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrProductNotFound
	}
	return err
}
