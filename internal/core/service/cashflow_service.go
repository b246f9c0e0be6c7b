package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/ports"
)

// CashFlowService records sales and expenses and computes period summaries.
type CashFlowService struct {
	repo ports.CashFlowRepository
}

func NewCashFlowService(repo ports.CashFlowRepository) *CashFlowService {
	return &CashFlowService{repo: repo}
}

func (s *CashFlowService) AddSale(ctx context.Context, userID string, amount float64, description string) (*domain.Sale, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.repo.AddSale(ctx, &domain.Sale{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		UserID:      userID,
		Date:        time.Now().UTC(),
	})
}

func (s *CashFlowService) AddExpense(ctx context.Context, userID string, amount float64, description string) (*domain.Expense, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.repo.AddExpense(ctx, &domain.Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		UserID:      userID,
		Date:        time.Now().UTC(),
	})
}

func (s *CashFlowService) Sales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	return s.repo.SalesByDateRange(ctx, from, to)
}

func (s *CashFlowService) Expenses(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	return s.repo.ExpensesByDateRange(ctx, from, to)
}

func (s *CashFlowService) Summary(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error) {
	sales, err := s.repo.TotalSales(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.TotalExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &domain.CashFlowSummary{
		From:          from,
		To:            to,
		TotalSales:    sales,
		TotalExpenses: expenses,
		Net:           sales - expenses,
	}, nil
}
