package ports

import (
	"context"
	"time"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// CashFlowRepository persists sales and expense entries.
type CashFlowRepository interface {
	AddSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	AddExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	SalesByDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
	ExpensesByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error)
	TotalSales(ctx context.Context, from, to time.Time) (float64, error)
	TotalExpenses(ctx context.Context, from, to time.Time) (float64, error)
}

// CashFlowService validates and records cash movements.
type CashFlowService interface {
	AddSale(ctx context.Context, userID string, amount float64, description string) (*domain.Sale, error)
	AddExpense(ctx context.Context, userID string, amount float64, description string) (*domain.Expense, error)
	Sales(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
	Expenses(ctx context.Context, from, to time.Time) ([]domain.Expense, error)
	Summary(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error)
}
