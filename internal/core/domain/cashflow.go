package domain

import "time"

// Sale is a single incoming cash entry.
type Sale struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id"`
	Date        time.Time `json:"date"`
}

// Expense is a single outgoing cash entry.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id"`
	Date        time.Time `json:"date"`
}

// CashFlowSummary aggregates sales and expenses over a date range.
type CashFlowSummary struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	TotalSales    float64   `json:"total_sales"`
	TotalExpenses float64   `json:"total_expenses"`
	Net           float64   `json:"net"`
}
