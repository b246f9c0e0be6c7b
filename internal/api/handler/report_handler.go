package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/ports"
)

// ReportHandler serves the combined business summary and its CSV export.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) ExportCSV(c echo.Context) error {
	data, err := h.reports.ExportCSV(c.Request().Context())
	if err != nil {
		return err
	}

	filename := "business-summary-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
