package service

import (
	"context"
	"errors"
	"fmt"

	"autoparts/internal/app/autoparts/entity"
	"autoparts/internal/app/autoparts/repository"
)

var (
	// Ожидаемые исходы при создании связи - мягкие отказы, не сбои
	ErrSelfRelation   = errors.New("product cannot relate to itself")
	ErrRelationExists = errors.New("relation already exists")
)

// RelationService управляет направленным графом "сопутствующие товары"
// Связь A->B не создает B->A: контракт направленный
type RelationService struct {
	relationRepo repository.RelationRepository
}

// NewRelationService создает новый сервис связей
func NewRelationService(relationRepo repository.RelationRepository) *RelationService {
	return &RelationService{relationRepo: relationRepo}
}

// ListRelated получает связи товара, развернутые до целевых товаров
// Неактивные целевые товары молча исключаются из выборки
func (s *RelationService) ListRelated(ctx context.Context, productID int64) ([]entity.RelatedProduct, error) {
	related, err := s.relationRepo.GetByMainProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list related products: %w", err)
	}

	return related, nil
}

// ListAvailableTargets получает активные товары, доступные для привязки:
// дополнение к ListRelated без самого товара
func (s *RelationService) ListAvailableTargets(ctx context.Context, productID int64) ([]entity.ProductView, error) {
	targets, err := s.relationRepo.GetAvailableTargets(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available targets: %w", err)
	}

	return targets, nil
}

// AddRelation создает направленную связь между товарами
// Связь с самим собой и дубликат пары - мягкие отказы:
// хранилище не меняется, вызывающему возвращается типизированная ошибка
func (s *RelationService) AddRelation(ctx context.Context, mainProductID, relatedProductID int64) (*entity.ProductRelation, error) {
	// Самосвязь отклоняется до обращения к хранилищу
	if mainProductID == relatedProductID {
		return nil, ErrSelfRelation
	}

	relation := &entity.ProductRelation{
		MainProductID:    mainProductID,
		RelatedProductID: relatedProductID,
	}

	if err := s.relationRepo.Create(ctx, relation); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRelation):
			return nil, ErrRelationExists
		case errors.Is(err, repository.ErrSelfRelation):
			return nil, ErrSelfRelation
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to add relation: %w", err)
	}

	return relation, nil
}

// RemoveRelation удаляет связь по ID; отсутствующий ID - no-op
func (s *RelationService) RemoveRelation(ctx context.Context, relationID int64) error {
	if err := s.relationRepo.Delete(ctx, relationID); err != nil {
		return fmt.Errorf("failed to remove relation: %w", err)
	}

	return nil
}
