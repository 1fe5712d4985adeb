package handler

import (
	"net/http"

	"autoparts/pkg/logger"
	"autoparts/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(
	catalogHandler *CatalogHandler,
	relationHandler *RelationHandler,
	salesHandler *SalesHandler,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("autoparts"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "autoparts",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Products endpoints
	products := router.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.POST("", catalogHandler.CreateProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct) // Удаляет и все связи товара

		// Граф сопутствующих товаров
		products.GET("/:id/related", relationHandler.ListRelated)
		products.GET("/:id/related/available", relationHandler.ListAvailableTargets)
		products.POST("/:id/related", relationHandler.AddRelation)
	}

	router.DELETE("/relations/:id", relationHandler.RemoveRelation)

	// Manufacturers endpoints
	manufacturers := router.Group("/manufacturers")
	{
		manufacturers.GET("", catalogHandler.ListManufacturers)
		manufacturers.POST("", catalogHandler.CreateManufacturer)
	}

	// Sales endpoints
	sales := router.Group("/sales")
	{
		sales.GET("", salesHandler.ListSales)
		sales.POST("", salesHandler.RecordSale)
	}

	return router
}
