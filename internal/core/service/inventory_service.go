package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/ports"
)

// InventoryService manages items and stock levels.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) AddItem(ctx context.Context, name, description, category string, price float64) (*domain.Item, error) {
	if price < 0 {
		return nil, domain.ErrInvalidAmount
	}
	now := time.Now().UTC()
	return s.repo.AddItem(ctx, &domain.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *InventoryService) Item(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindItem(ctx, id)
}

func (s *InventoryService) Items(ctx context.Context, category string) ([]domain.Item, error) {
	if category != "" {
		return s.repo.ItemsByCategory(ctx, category)
	}
	return s.repo.ListItems(ctx)
}

func (s *InventoryService) SetStock(ctx context.Context, itemID string, quantity, minQuantity int) (*domain.StockLevel, error) {
	if quantity < 0 || minQuantity < 0 {
		return nil, domain.ErrInvalidAmount
	}
	// Upserting stock for a missing item would otherwise leave an orphan row.
	if _, err := s.repo.FindItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.UpsertStock(ctx, itemID, quantity, minQuantity)
}

func (s *InventoryService) LowStock(ctx context.Context) ([]domain.LowStockItem, error) {
	return s.repo.LowStock(ctx)
}

func (s *InventoryService) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	low, err := s.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.InventorySummary{
		ItemCount:  len(items),
		TotalValue: total,
		LowStock:   low,
	}, nil
}
