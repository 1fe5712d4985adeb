package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoparts/internal/app/autoparts/entity"
	"autoparts/internal/app/autoparts/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// SalesService ведет журнал продаж и считает статистику
// Журнал только на добавление: записи не редактируются и не удаляются
type SalesService struct {
	productRepo repository.ProductRepository
	salesRepo   repository.SalesRepository
}

// NewSalesService создает новый сервис журнала продаж
func NewSalesService(
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
) *SalesService {
	return &SalesService{
		productRepo: productRepo,
		salesRepo:   salesRepo,
	}
}

// RecordSale фиксирует продажу товара по его текущей цене
// Сумма считается точной десятичной арифметикой и замораживается:
// последующие изменения цены товара не влияют на прошлые продажи
func (s *SalesService) RecordSale(ctx context.Context, req *entity.RecordSaleRequest) (*entity.SalesRecord, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	record := &entity.SalesRecord{
		ProductID:    &req.ProductID,
		Quantity:     req.Quantity,
		SaleDate:     saleDate,
		TotalAmount:  product.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		CustomerInfo: req.CustomerInfo,
	}

	if err := s.salesRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	return record, nil
}

// ListSales получает записи о продажах с названием товара,
// сначала новые; при переданном productID - только по одному товару
func (s *SalesService) ListSales(ctx context.Context, productID *int64) ([]entity.SaleView, error) {
	sales, err := s.salesRepo.GetAll(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, nil
}

// ComputeStatistics считает агрегаты по произвольному набору продаж:
// суммарное количество, суммарную выручку и средний чек
// Пустой набор дает нули, деления на ноль не происходит
func (s *SalesService) ComputeStatistics(sales []entity.SaleView) entity.SalesStatistics {
	stats := entity.SalesStatistics{
		TotalRevenue: decimal.Zero,
		AverageSale:  decimal.Zero,
	}

	if len(sales) == 0 {
		return stats
	}

	for _, sale := range sales {
		stats.TotalQuantity += int64(sale.Quantity)
		stats.TotalRevenue = stats.TotalRevenue.Add(sale.TotalAmount)
	}

	stats.AverageSale = stats.TotalRevenue.
		DivRound(decimal.NewFromInt(int64(len(sales))), 2)

	return stats
}
