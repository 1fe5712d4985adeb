package repository

import (
	"context"
	"strings"
	"time"

	"autoparts/internal/app/autoparts/entity"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository создает новый репозиторий товаров
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// productViewQuery строит базовый запрос витрины товаров:
// товар + имя производителя + число исходящих связей
// Агрегаты вычисляются на лету и в таблице не хранятся
func (r *productRepository) productViewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products p").
		Select(`p.*, COALESCE(m.name, '') AS manufacturer_name,
			(SELECT COUNT(*) FROM product_relations pr WHERE pr.main_product_id = p.id) AS related_products_count`).
		Joins("LEFT JOIN manufacturers m ON m.id = p.manufacturer_id")
}

// Create создает новый товар и возвращает назначенный ID в product.ID
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Create(product)
	return translateConstraintError(result.Error)
}

// GetByID получает товар по ID вместе с производителем и числом связей
func (r *productRepository) GetByID(ctx context.Context, id int64) (*entity.ProductView, error) {
	var view entity.ProductView
	result := r.productViewQuery(ctx).Where("p.id = ?", id).Scan(&view)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	return &view, nil
}

// GetAll получает товары с фильтрацией по производителю и сортировкой
// По умолчанию сортировка по имени, по цене - в обоих направлениях
func (r *productRepository) GetAll(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductView, error) {
	query := r.productViewQuery(ctx)

	if filter.ManufacturerID != nil {
		query = query.Where("p.manufacturer_id = ?", *filter.ManufacturerID)
	}

	// Ключи сортировки ограничены белым списком, остальное - порядок по умолчанию
	switch filter.SortBy {
	case "price":
		direction := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			direction = "DESC"
		}
		query = query.Order("p.price " + direction)
	default:
		query = query.Order("p.name ASC")
	}

	var views []entity.ProductView
	if err := query.Scan(&views).Error; err != nil {
		return nil, err
	}

	return views, nil
}

// Update обновляет все изменяемые поля товара и обновляет updated_at
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":            product.Name,
			"price":           product.Price,
			"description":     product.Description,
			"image_path":      product.ImagePath,
			"manufacturer_id": product.ManufacturerID,
			"is_active":       product.IsActive,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return translateConstraintError(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DeleteWithRelations удаляет товар вместе со всеми его связями
// Порядок обязателен: сначала связи в обоих направлениях, затем сам товар
// Обе операции выполняются в одной транзакции и откатываются вместе
func (r *productRepository) DeleteWithRelations(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("main_product_id = ? OR related_product_id = ?", id, id).
			Delete(&entity.ProductRelation{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.Product{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}

		return nil
	})
}
