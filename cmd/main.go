package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoparts/internal/app/autoparts/config"
	"autoparts/internal/app/autoparts/handler"
	"autoparts/internal/app/autoparts/repository"
	"autoparts/internal/app/autoparts/service"
	"autoparts/internal/app/autoparts/storage"
	"autoparts/pkg/logger"
)

func main() {
	// === ИНИЦИАЛИЗАЦИЯ КОНФИГУРАЦИИ ===
	cfg, err := config.Load()
	if err != nil {
		logger.Init("autoparts", "info")
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init("autoparts", cfg.Log.Level)

	// === ОТКРЫТИЕ ХРАНИЛИЩА ===
	// Файловая база SQLite, один процесс - один писатель
	db, err := storage.Open(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer storage.Close(db)
	logger.Info().Str("path", cfg.Database.Path).Msg("Database opened")

	// Схема создается идемпотентно: повторный запуск ничего не меняет
	if err := storage.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Демо-данные загружаются только в пустую базу
	if cfg.Seed.Demo {
		if err := storage.Seed(db); err != nil {
			logger.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	// === ИНИЦИАЛИЗАЦИЯ СЛОЯ РЕПОЗИТОРИЕВ ===
	manufacturerRepo := repository.NewManufacturerRepository(db)
	productRepo := repository.NewProductRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	salesRepo := repository.NewSalesRepository(db)

	// === ИНИЦИАЛИЗАЦИЯ БИЗНЕС-ЛОГИКИ ===
	catalogService := service.NewCatalogService(manufacturerRepo, productRepo)
	relationService := service.NewRelationService(relationRepo)
	salesService := service.NewSalesService(productRepo, salesRepo)

	// === ИНИЦИАЛИЗАЦИЯ HTTP HANDLERS ===
	catalogHandler := handler.NewCatalogHandler(catalogService)
	relationHandler := handler.NewRelationHandler(relationService)
	salesHandler := handler.NewSalesHandler(salesService)

	// === НАСТРОЙКА МАРШРУТОВ ===
	router := handler.SetupRoutes(catalogHandler, relationHandler, salesHandler)

	// === НАСТРОЙКА HTTP СЕРВЕРА ===
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// === ЗАПУСК HTTP СЕРВЕРА ===
	go func() {
		logger.Info().Str("addr", cfg.Server.Address()).Msg("Starting autoparts service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// === GRACEFUL SHUTDOWN ===
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down autoparts service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Autoparts service stopped gracefully")
}
