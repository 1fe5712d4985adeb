package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaveProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Price          decimal.Decimal `json:"price"`
	Description    string          `json:"description" validate:"max=2000"`
	ImagePath      string          `json:"image_path" validate:"max=500"`
	ManufacturerID *int64          `json:"manufacturer_id"`
	IsActive       *bool           `json:"is_active"`
}

type CreateManufacturerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type AddRelationRequest struct {
	RelatedProductID int64 `json:"related_product_id" validate:"required"`
}

type RecordSaleRequest struct {
	ProductID    int64      `json:"product_id" validate:"required"`
	Quantity     int        `json:"quantity" validate:"required,gt=0"`
	SaleDate     *time.Time `json:"sale_date"` // Необязательная дата задним числом, по умолчанию - сейчас
	CustomerInfo string     `json:"customer_info" validate:"max=500"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ProductListResponse struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
}

type ManufacturerListResponse struct {
	Manufacturers []Manufacturer `json:"manufacturers"`
	Total         int            `json:"total"`
}

type RelatedListResponse struct {
	Related []RelatedProduct `json:"related"`
	Total   int              `json:"total"`
}

type SalesListResponse struct {
	Sales      []SaleView      `json:"sales"`
	Total      int             `json:"total"`
	Statistics SalesStatistics `json:"statistics"`
}
