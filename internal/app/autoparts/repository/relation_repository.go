package repository

import (
	"context"

	"autoparts/internal/app/autoparts/entity"

	"gorm.io/gorm"
)

type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository создает новый репозиторий связей товаров
func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

// Create создает направленную связь между товарами
// Дубликат пары и связь товара с самим собой отклоняются схемой
// и переводятся в ErrDuplicateRelation / ErrSelfRelation
func (r *relationRepository) Create(ctx context.Context, relation *entity.ProductRelation) error {
	result := r.db.WithContext(ctx).Create(relation)
	return translateConstraintError(result.Error)
}

// GetByMainProduct получает связи товара, развернутые до целевых товаров
// Неактивные целевые товары не попадают в выборку, но остаются в хранилище
// Порядок - по возрастанию ID связи (порядок вставки)
func (r *relationRepository) GetByMainProduct(ctx context.Context, mainProductID int64) ([]entity.RelatedProduct, error) {
	var related []entity.RelatedProduct
	result := r.db.WithContext(ctx).
		Table("product_relations pr").
		Select(`pr.id AS relation_id, pr.main_product_id, pr.related_product_id, pr.created_at,
			p.name, p.price, p.image_path, p.is_active`).
		Joins("JOIN products p ON p.id = pr.related_product_id").
		Where("pr.main_product_id = ? AND p.is_active = ?", mainProductID, true).
		Order("pr.id ASC").
		Scan(&related)

	if result.Error != nil {
		return nil, result.Error
	}

	return related, nil
}

// GetAvailableTargets получает активные товары, которые еще можно привязать:
// все, кроме самого товара и уже привязанных от него
// Выборка - дополнение к GetByMainProduct
func (r *relationRepository) GetAvailableTargets(ctx context.Context, productID int64) ([]entity.ProductView, error) {
	var views []entity.ProductView
	result := r.db.WithContext(ctx).
		Table("products p").
		Select(`p.*, COALESCE(m.name, '') AS manufacturer_name, 0 AS related_products_count`).
		Joins("LEFT JOIN manufacturers m ON m.id = p.manufacturer_id").
		Where("p.id <> ? AND p.is_active = ?", productID, true).
		Where("p.id NOT IN (SELECT pr.related_product_id FROM product_relations pr WHERE pr.main_product_id = ?)", productID).
		Order("p.name ASC").
		Scan(&views)

	if result.Error != nil {
		return nil, result.Error
	}

	return views, nil
}

// Delete удаляет связь по ID
// Отсутствующий ID - no-op, ошибкой не считается
func (r *relationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entity.ProductRelation{}, id)
	return result.Error
}
