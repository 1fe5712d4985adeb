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

// SalesHandler обрабатывает HTTP запросы журнала продаж
type SalesHandler struct {
	salesService *service.SalesService
	validator    *validator.Validate
}

// NewSalesHandler создает новый обработчик продаж
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		validator:    validator.New(),
	}
}

// ListSales обрабатывает GET /sales
// Поддерживает ?product_id=; статистика считается по возвращаемой выборке
func (h *SalesHandler) ListSales(c *gin.Context) {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid product_id"})
			return
		}
		productID = &id
	}

	sales, err := h.salesService.ListSales(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, entity.SalesListResponse{
		Sales:      sales,
		Total:      len(sales),
		Statistics: h.salesService.ComputeStatistics(sales),
	})
}

// RecordSale обрабатывает POST /sales
// Сумма продажи фиксируется по текущей цене товара
func (h *SalesHandler) RecordSale(c *gin.Context) {
	var req entity.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	record, err := h.salesService.RecordSale(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Quantity must be positive"})
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to record sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}
