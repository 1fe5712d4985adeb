package repository

import (
	"context"

	"autoparts/internal/app/autoparts/entity"

	"gorm.io/gorm"
)

type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository создает новый репозиторий журнала продаж
func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

// Create добавляет запись о продаже
// Журнал только на добавление: записи не изменяются и не удаляются
func (r *salesRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	result := r.db.WithContext(ctx).Create(record)
	return translateConstraintError(result.Error)
}

// GetAll получает записи о продажах с названием товара,
// отсортированные по дате продажи (сначала новые)
// При переданном productID выборка ограничивается одним товаром
// Продажи удаленных товаров остаются в выборке с пустым названием
func (r *salesRepository) GetAll(ctx context.Context, productID *int64) ([]entity.SaleView, error) {
	query := r.db.WithContext(ctx).
		Table("sales_history sh").
		Select("sh.*, COALESCE(p.name, '') AS product_name").
		Joins("LEFT JOIN products p ON p.id = sh.product_id")

	if productID != nil {
		query = query.Where("sh.product_id = ?", *productID)
	}

	var sales []entity.SaleView
	result := query.Order("sh.sale_date DESC").Scan(&sales)

	if result.Error != nil {
		return nil, result.Error
	}

	return sales, nil
}
