package domain

import "time"

// BusinessSummary is the combined snapshot served by /reports/summary and
// the main dashboard.
type BusinessSummary struct {
	GeneratedAt time.Time        `json:"generated_at"`
	CashFlow    CashFlowSummary  `json:"cash_flow"`
	Inventory   InventorySummary `json:"inventory"`
}
