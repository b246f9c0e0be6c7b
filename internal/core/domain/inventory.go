package domain

import "time"

// Item is a product tracked in inventory.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockLevel records the on-hand quantity for an item and the threshold
// below which it is considered low.
type StockLevel struct {
	ItemID      string    `json:"item_id"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LowStockItem joins an item with its stock level for restocking reports.
type LowStockItem struct {
	Item
	Quantity    int `json:"quantity"`
	MinQuantity int `json:"min_quantity"`
}

// InventorySummary is the snapshot rendered by the inventory dashboard.
type InventorySummary struct {
	ItemCount  int            `json:"item_count"`
	TotalValue float64        `json:"total_value"`
	LowStock   []LowStockItem `json:"low_stock"`
}
