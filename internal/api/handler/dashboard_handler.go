package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/ports"
)

// DashboardHandler serves the aggregates behind the three dashboard pages.
type DashboardHandler struct {
	reports   ports.ReportService
	cashflow  ports.CashFlowService
	inventory ports.InventoryService
}

func NewDashboardHandler(reports ports.ReportService, cashflow ports.CashFlowService, inventory ports.InventoryService) *DashboardHandler {
	return &DashboardHandler{reports: reports, cashflow: cashflow, inventory: inventory}
}

// Main is the landing dashboard: the combined business summary.
func (h *DashboardHandler) Main(c echo.Context) error {
	summary, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) CashFlow(c echo.Context) error {
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

func (h *DashboardHandler) Inventory(c echo.Context) error {
	summary, err := h.inventory.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
