package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/ports"
)

const defaultRangeDays = 30

// CashFlowHandler serves the sales and expense ledger plus its summary.
type CashFlowHandler struct {
	cashflow ports.CashFlowService
}

func NewCashFlowHandler(cashflow ports.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{cashflow: cashflow}
}

type entryRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

func (h *CashFlowHandler) AddSale(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sale, err := h.cashflow.AddSale(c.Request().Context(), userID, req.Amount, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sale)
}

func (h *CashFlowHandler) AddExpense(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	expense, err := h.cashflow.AddExpense(c.Request().Context(), userID, req.Amount, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expense)
}

func (h *CashFlowHandler) ListSales(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return err
	}
	sales, err := h.cashflow.Sales(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

func (h *CashFlowHandler) ListExpenses(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return err
	}
	expenses, err := h.cashflow.Expenses(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenses)
}

func (h *CashFlowHandler) Summary(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return err
	}
	summary, err := h.cashflow.Summary(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// dateRange reads optional from/to query params (YYYY-MM-DD). Without
// them the window is the trailing 30 days.
func dateRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -defaultRangeDays)
	to := now

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		// Make the bound inclusive of the named day.
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must not precede from")
	}
	return from, to, nil
}
