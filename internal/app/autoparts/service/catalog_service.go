package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autoparts/internal/app/autoparts/entity"
	"autoparts/internal/app/autoparts/repository"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrProductNotFound      = errors.New("product not found")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrEmptyName            = errors.New("name is required")
	ErrNegativePrice        = errors.New("price cannot be negative")
)

// CatalogService обрабатывает бизнес-логику каталога товаров:
// CRUD, фильтрация, сортировка, производители
type CatalogService struct {
	manufacturerRepo repository.ManufacturerRepository
	productRepo      repository.ProductRepository
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(
	manufacturerRepo repository.ManufacturerRepository,
	productRepo repository.ProductRepository,
) *CatalogService {
	return &CatalogService{
		manufacturerRepo: manufacturerRepo,
		productRepo:      productRepo,
	}
}

// ListProducts получает товары с производителем и числом связей
// Фильтр по производителю - точное совпадение, без фильтра - все товары
func (s *CatalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductView, error) {
	products, err := s.productRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetProduct получает товар по ID
// Отсутствие товара - ожидаемый исход, а не сбой хранилища
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*entity.ProductView, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// SaveProduct сохраняет товар: вставка при нулевом ID, иначе полное обновление
// Возвращает ID сохраненного товара
// Цена всегда сохраняется как точное десятичное значение
func (s *CatalogService) SaveProduct(ctx context.Context, product *entity.Product) (int64, error) {
	if strings.TrimSpace(product.Name) == "" {
		return 0, ErrEmptyName
	}
	if product.Price.IsNegative() {
		return 0, ErrNegativePrice
	}
	if product.ManufacturerID != nil {
		if _, err := s.manufacturerRepo.GetByID(ctx, *product.ManufacturerID); err != nil {
			if errors.Is(err, repository.ErrManufacturerNotFound) {
				return 0, ErrManufacturerNotFound
			}
			return 0, fmt.Errorf("failed to verify manufacturer: %w", err)
		}
	}

	if product.ID == 0 {
		if err := s.productRepo.Create(ctx, product); err != nil {
			return 0, fmt.Errorf("failed to create product: %w", err)
		}
		return product.ID, nil
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, fmt.Errorf("failed to update product: %w", err)
	}

	return product.ID, nil
}

// DeleteProduct удаляет товар вместе со связями в обоих направлениях
// Порядок (сначала связи, затем товар) обеспечивается репозиторием
// в одной транзакции
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteWithRelations(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// ListManufacturers получает всех производителей по имени
func (s *CatalogService) ListManufacturers(ctx context.Context) ([]entity.Manufacturer, error) {
	manufacturers, err := s.manufacturerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	return manufacturers, nil
}

// EnsureManufacturer возвращает производителя по имени, создавая при отсутствии
// Повторный вызов с тем же именем возвращает ту же запись
func (s *CatalogService) EnsureManufacturer(ctx context.Context, name string) (*entity.Manufacturer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	manufacturer, err := s.manufacturerRepo.EnsureByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure manufacturer: %w", err)
	}

	return manufacturer, nil
}
