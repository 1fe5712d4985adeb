package repository

import (
	"testing"

	"autoparts/internal/app/autoparts/entity"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB открывает изолированную in-memory базу SQLite со схемой
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&entity.Manufacturer{},
		&entity.Product{},
		&entity.ProductRelation{},
		&entity.SalesRecord{},
	))

	return db
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func createTestManufacturer(t *testing.T, db *gorm.DB, name string) *entity.Manufacturer {
	t.Helper()
	manufacturer := &entity.Manufacturer{Name: name}
	require.NoError(t, db.Create(manufacturer).Error)
	return manufacturer
}

func createTestProduct(t *testing.T, db *gorm.DB, name, price string, manufacturerID *int64, active bool) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:           name,
		Price:          mustDecimal(t, price),
		ManufacturerID: manufacturerID,
		IsActive:       active,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
