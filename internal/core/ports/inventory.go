package ports

import (
	"context"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// InventoryRepository persists items and their stock levels.
type InventoryRepository interface {
	AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	// FindItem returns domain.ErrItemNotFound when no item matches.
	FindItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ItemsByCategory(ctx context.Context, category string) ([]domain.Item, error)
	UpsertStock(ctx context.Context, itemID string, quantity, minQuantity int) (*domain.StockLevel, error)
	// StockFor returns domain.ErrStockNotFound when the item has no record.
	StockFor(ctx context.Context, itemID string) (*domain.StockLevel, error)
	LowStock(ctx context.Context) ([]domain.LowStockItem, error)
	TotalValue(ctx context.Context) (float64, error)
}

// InventoryService validates and records inventory changes.
type InventoryService interface {
	AddItem(ctx context.Context, name, description, category string, price float64) (*domain.Item, error)
	Item(ctx context.Context, id string) (*domain.Item, error)
	Items(ctx context.Context, category string) ([]domain.Item, error)
	SetStock(ctx context.Context, itemID string, quantity, minQuantity int) (*domain.StockLevel, error)
	LowStock(ctx context.Context) ([]domain.LowStockItem, error)
	Summary(ctx context.Context) (*domain.InventorySummary, error)
}
