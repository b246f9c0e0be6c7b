package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// CashFlowRepository persists sales and expenses. The two tables share a
// shape, so the queries are generated per table name from a fixed set;
// never from user input.
type CashFlowRepository struct {
	db *sql.DB
}

func NewCashFlowRepository(db *sql.DB) *CashFlowRepository {
	return &CashFlowRepository{db: db}
}

func (r *CashFlowRepository) AddSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if err := r.insertEntry(ctx, "sales", sale.ID, sale.Amount, sale.Description, sale.UserID, sale.Date); err != nil {
		return nil, err
	}
	clone := *sale
	return &clone, nil
}

func (r *CashFlowRepository) AddExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if err := r.insertEntry(ctx, "expenses", expense.ID, expense.Amount, expense.Description, expense.UserID, expense.Date); err != nil {
		return nil, err
	}
	clone := *expense
	return &clone, nil
}

func (r *CashFlowRepository) insertEntry(ctx context.Context, table, id string, amount float64, description, userID string, date time.Time) error {
	query := fmt.Sprintf(`insert into %s (id, amount, description, user_id, date) values ($1, $2, $3, $4, $5)`, table)
	if _, err := r.db.ExecContext(ctx, query, id, amount, description, nullable(userID), date); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (r *CashFlowRepository) SalesByDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		select id, amount, description, coalesce(user_id, ''), date
		from sales where date between $1 and $2 order by date desc
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.Amount, &s.Description, &s.UserID, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *CashFlowRepository) ExpensesByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		select id, amount, description, coalesce(user_id, ''), date
		from expenses where date between $1 and $2 order by date desc
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Description, &e.UserID, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *CashFlowRepository) TotalSales(ctx context.Context, from, to time.Time) (float64, error) {
	return r.totalFor(ctx, "sales", from, to)
}

func (r *CashFlowRepository) TotalExpenses(ctx context.Context, from, to time.Time) (float64, error) {
	return r.totalFor(ctx, "expenses", from, to)
}

func (r *CashFlowRepository) totalFor(ctx context.Context, table string, from, to time.Time) (float64, error) {
	query := fmt.Sprintf(`select coalesce(sum(amount), 0) from %s where date between $1 and $2`, table)
	var total float64
	if err := r.db.QueryRowContext(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("total %s: %w", table, err)
	}
	return total, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
