package storage

import (
	"errors"
	"time"

	"autoparts/internal/app/autoparts/config"
	"autoparts/internal/app/autoparts/entity"
	"autoparts/pkg/metrics"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "autoparts"

// Open открывает файловую базу SQLite с включенными внешними ключами
// Хранилище создается явно и передается по ссылке; глобального состояния нет
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// База однопользовательская: одно соединение исключает
	// конкурирующих писателей внутри процесса
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := instrument(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Close закрывает соединение с базой данных
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate создает схему со всеми ограничениями
// (уникальность, внешние ключи, CHECK). Повторный вызов - no-op
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Manufacturer{},
		&entity.Product{},
		&entity.ProductRelation{},
		&entity.SalesRecord{},
	)
}

const queryStartKey = "autoparts:query_start"

// instrument регистрирует gorm callbacks для метрик db_query_duration_seconds
// и db_errors_total
func instrument(db *gorm.DB) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartKey, time.Now())
	}

	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			value, ok := tx.InstanceGet(queryStartKey)
			if !ok {
				return
			}
			start, ok := value.(time.Time)
			if !ok {
				return
			}

			metrics.DbQueryDuration.
				WithLabelValues(serviceName, operation, tx.Statement.Table).
				Observe(time.Since(start).Seconds())

			if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
				metrics.DbErrors.WithLabelValues(serviceName, operation).Inc()
			}
		}
	}

	registrations := []struct {
		operation     string
		before, after callbackRegistry
	}{
		{"create", db.Callback().Create().Before("gorm:create"), db.Callback().Create().After("gorm:create")},
		{"query", db.Callback().Query().Before("gorm:query"), db.Callback().Query().After("gorm:query")},
		{"update", db.Callback().Update().Before("gorm:update"), db.Callback().Update().After("gorm:update")},
		{"delete", db.Callback().Delete().Before("gorm:delete"), db.Callback().Delete().After("gorm:delete")},
		{"raw", db.Callback().Raw().Before("gorm:raw"), db.Callback().Raw().After("gorm:raw")},
		{"row", db.Callback().Row().Before("gorm:row"), db.Callback().Row().After("gorm:row")},
	}

	for _, r := range registrations {
		if err := r.before.Register("metrics:before_"+r.operation, before); err != nil {
			return err
		}
		if err := r.after.Register("metrics:after_"+r.operation, after(r.operation)); err != nil {
			return err
		}
	}

	return nil
}

// callbackRegistry - точка регистрации одного gorm callback
// (тип процессора в gorm не экспортируется)
type callbackRegistry interface {
	Register(name string, fn func(*gorm.DB)) error
}
