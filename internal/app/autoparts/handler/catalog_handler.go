package handler

import (
	"errors"
	"net/http"
	"strconv"

	"autoparts/internal/app/autoparts/entity"
	"autoparts/internal/app/autoparts/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CatalogHandler обрабатывает HTTP запросы каталога с использованием Gin
type CatalogHandler struct {
	catalogService *service.CatalogService
	validator      *validator.Validate
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// ListProducts обрабатывает GET /products
// Поддерживает ?manufacturer_id=, ?sort_by=price, ?sort_order=asc|desc
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := entity.ProductFilter{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("manufacturer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid manufacturer_id"})
			return
		}
		filter.ManufacturerID = &id
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, entity.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// GetProduct обрабатывает GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct обрабатывает POST /products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	h.saveProduct(c, 0)
}

// UpdateProduct обрабатывает PUT /products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.saveProduct(c, id)
}

// saveProduct - общий путь вставки (id == 0) и обновления
func (h *CatalogHandler) saveProduct(c *gin.Context, id int64) {
	var req entity.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &entity.Product{
		ID:             id,
		Name:           req.Name,
		Price:          req.Price,
		Description:    req.Description,
		ImagePath:      req.ImagePath,
		ManufacturerID: req.ManufacturerID,
		IsActive:       isActive,
	}

	savedID, err := h.catalogService.SaveProduct(c.Request.Context(), product)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName), errors.Is(err, service.ErrNegativePrice):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrManufacturerNotFound):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Manufacturer not found"})
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to save product"})
		}
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}

	view, err := h.catalogService.GetProduct(c.Request.Context(), savedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to get saved product"})
		return
	}

	c.JSON(status, view)
}

// DeleteProduct обрабатывает DELETE /products/:id
// Вместе с товаром удаляются все его связи в обоих направлениях
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Product deleted successfully"})
}

// ListManufacturers обрабатывает GET /manufacturers
func (h *CatalogHandler) ListManufacturers(c *gin.Context) {
	manufacturers, err := h.catalogService.ListManufacturers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to list manufacturers"})
		return
	}

	c.JSON(http.StatusOK, entity.ManufacturerListResponse{
		Manufacturers: manufacturers,
		Total:         len(manufacturers),
	})
}

// CreateManufacturer обрабатывает POST /manufacturers
// Вставка идемпотентна: существующее имя возвращает существующую запись
func (h *CatalogHandler) CreateManufacturer(c *gin.Context) {
	var req entity.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	manufacturer, err := h.catalogService.EnsureManufacturer(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to create manufacturer"})
		return
	}

	c.JSON(http.StatusCreated, manufacturer)
}

// === HELPER FUNCTIONS ===

// parseIDParam извлекает целочисленный ID из параметра пути
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// formatValidationError форматирует ошибки валидации
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Field() + " validation failed"
	}
	return "Validation failed"
}
