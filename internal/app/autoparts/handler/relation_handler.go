package handler

import (
	"errors"
	"net/http"

	"autoparts/internal/app/autoparts/entity"
	"autoparts/internal/app/autoparts/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RelationHandler обрабатывает HTTP запросы графа сопутствующих товаров
type RelationHandler struct {
	relationService *service.RelationService
	validator       *validator.Validate
}

// NewRelationHandler создает новый обработчик связей
func NewRelationHandler(relationService *service.RelationService) *RelationHandler {
	return &RelationHandler{
		relationService: relationService,
		validator:       validator.New(),
	}
}

// ListRelated обрабатывает GET /products/:id/related
func (h *RelationHandler) ListRelated(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	related, err := h.relationService.ListRelated(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to list related products"})
		return
	}

	c.JSON(http.StatusOK, entity.RelatedListResponse{
		Related: related,
		Total:   len(related),
	})
}

// ListAvailableTargets обрабатывает GET /products/:id/related/available
// Возвращает активные товары, которые еще можно привязать
func (h *RelationHandler) ListAvailableTargets(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	targets, err := h.relationService.ListAvailableTargets(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to list available targets"})
		return
	}

	c.JSON(http.StatusOK, entity.ProductListResponse{
		Products: targets,
		Total:    len(targets),
	})
}

// AddRelation обрабатывает POST /products/:id/related
// Дубликат пары и самосвязь - ожидаемые отказы, возвращается 409
func (h *RelationHandler) AddRelation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.AddRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	relation, err := h.relationService.AddRelation(c.Request.Context(), id, req.RelatedProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfRelation):
			c.JSON(http.StatusConflict, entity.ErrorResponse{Error: "Product cannot relate to itself"})
		case errors.Is(err, service.ErrRelationExists):
			c.JSON(http.StatusConflict, entity.ErrorResponse{Error: "Relation already exists"})
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to add relation"})
		}
		return
	}

	c.JSON(http.StatusCreated, relation)
}

// RemoveRelation обрабатывает DELETE /relations/:id
// Отсутствующий ID - no-op, ответ успешный
func (h *RelationHandler) RemoveRelation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.relationService.RemoveRelation(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Failed to remove relation"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{Message: "Relation removed successfully"})
}
