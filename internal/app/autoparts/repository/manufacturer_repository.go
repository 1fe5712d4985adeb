package repository

import (
	"context"
	"errors"

	"autoparts/internal/app/autoparts/entity"

	"gorm.io/gorm"
)

type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository создает новый репозиторий производителей
func NewManufacturerRepository(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

// EnsureByName возвращает производителя по имени, создавая его при отсутствии
// Операция идемпотентна: повторный вызов возвращает существующую запись
func (r *manufacturerRepository) EnsureByName(ctx context.Context, name string) (*entity.Manufacturer, error) {
	var manufacturer entity.Manufacturer
	result := r.db.WithContext(ctx).
		Where("name = ?", name).
		Attrs(entity.Manufacturer{Name: name}).
		FirstOrCreate(&manufacturer)

	if result.Error != nil {
		return nil, result.Error
	}

	return &manufacturer, nil
}

// GetByID получает производителя по ID
func (r *manufacturerRepository) GetByID(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	var manufacturer entity.Manufacturer
	result := r.db.WithContext(ctx).First(&manufacturer, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrManufacturerNotFound
		}
		return nil, result.Error
	}

	return &manufacturer, nil
}

// GetAll получает всех производителей, упорядоченных по имени
func (r *manufacturerRepository) GetAll(ctx context.Context) ([]entity.Manufacturer, error) {
	var manufacturers []entity.Manufacturer
	result := r.db.WithContext(ctx).Order("name ASC").Find(&manufacturers)

	if result.Error != nil {
		return nil, result.Error
	}

	return manufacturers, nil
}
