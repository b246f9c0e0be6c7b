package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// InventoryRepository persists items and stock levels.
type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const itemColumns = `id, name, description, category, price, created_at, updated_at`

func (r *InventoryRepository) AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	_, err := r.db.ExecContext(ctx, `
		insert into inventory_items (id, name, description, category, price, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7)
	`, item.ID, item.Name, item.Description, item.Category, item.Price, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	clone := *item
	return &clone, nil
}

func (r *InventoryRepository) FindItem(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.QueryRowContext(ctx, `select `+itemColumns+` from inventory_items where id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Category, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	return r.queryItems(ctx, `select `+itemColumns+` from inventory_items order by name`)
}

func (r *InventoryRepository) ItemsByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	return r.queryItems(ctx, `select `+itemColumns+` from inventory_items where category = $1 order by name`, category)
}

func (r *InventoryRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Category, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) UpsertStock(ctx context.Context, itemID string, quantity, minQuantity int) (*domain.StockLevel, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		insert into stock_levels (item_id, quantity, min_quantity, updated_at)
		values ($1, $2, $3, $4)
		on conflict (item_id) do update
		set quantity = excluded.quantity,
		    min_quantity = excluded.min_quantity,
		    updated_at = excluded.updated_at
	`, itemID, quantity, minQuantity, now)
	if err != nil {
		return nil, fmt.Errorf("upsert stock: %w", err)
	}
	return &domain.StockLevel{ItemID: itemID, Quantity: quantity, MinQuantity: minQuantity, UpdatedAt: now}, nil
}

func (r *InventoryRepository) StockFor(ctx context.Context, itemID string) (*domain.StockLevel, error) {
	var level domain.StockLevel
	err := r.db.QueryRowContext(ctx, `
		select item_id, quantity, min_quantity, updated_at from stock_levels where item_id = $1
	`, itemID).Scan(&level.ItemID, &level.Quantity, &level.MinQuantity, &level.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find stock: %w", err)
	}
	return &level, nil
}

func (r *InventoryRepository) LowStock(ctx context.Context) ([]domain.LowStockItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		select i.id, i.name, i.description, i.category, i.price, i.created_at, i.updated_at,
		       s.quantity, s.min_quantity
		from inventory_items i
		join stock_levels s on s.item_id = i.id
		where s.quantity <= s.min_quantity
		order by i.name
	`)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()

	var items []domain.LowStockItem
	for rows.Next() {
		var it domain.LowStockItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &it.Price, &it.CreatedAt, &it.UpdatedAt, &it.Quantity, &it.MinQuantity); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) TotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		select coalesce(sum(i.price * s.quantity), 0)
		from inventory_items i
		join stock_levels s on s.item_id = i.id
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total value: %w", err)
	}
	return total, nil
}
