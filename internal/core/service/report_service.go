package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/ports"
)

const (
	summaryPeriod = 30 * 24 * time.Hour
	summaryTTL    = 5 * time.Minute
)

// ReportService assembles the cross-area business snapshot. Summaries are
// cached for a short window; a cache failure degrades to recomputation.
type ReportService struct {
	cashflow  ports.CashFlowService
	inventory ports.InventoryService
	cache     ports.ReportCache
	log       zerolog.Logger
}

func NewReportService(cashflow ports.CashFlowService, inventory ports.InventoryService, cache ports.ReportCache, log zerolog.Logger) *ReportService {
	return &ReportService{cashflow: cashflow, inventory: inventory, cache: cache, log: log}
}

func (s *ReportService) Summary(ctx context.Context) (*domain.BusinessSummary, error) {
	if cached, err := s.cache.GetSummary(ctx); err != nil {
		s.log.Warn().Err(err).Msg("report cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	now := time.Now().UTC()
	cf, err := s.cashflow.Summary(ctx, now.Add(-summaryPeriod), now)
	if err != nil {
		return nil, err
	}
	inv, err := s.inventory.Summary(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.BusinessSummary{
		GeneratedAt: now,
		CashFlow:    *cf,
		Inventory:   *inv,
	}

	if err := s.cache.SetSummary(ctx, summary, summaryTTL); err != nil {
		s.log.Warn().Err(err).Msg("report cache write failed")
	}
	return summary, nil
}

// ExportCSV renders the current summary as a two-column CSV document.
func (s *ReportService) ExportCSV(ctx context.Context) ([]byte, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := [][]string{
		{"metric", "value"},
		{"generated_at", summary.GeneratedAt.Format(time.RFC3339)},
		{"total_sales", strconv.FormatFloat(summary.CashFlow.TotalSales, 'f', 2, 64)},
		{"total_expenses", strconv.FormatFloat(summary.CashFlow.TotalExpenses, 'f', 2, 64)},
		{"net", strconv.FormatFloat(summary.CashFlow.Net, 'f', 2, 64)},
		{"inventory_items", strconv.Itoa(summary.Inventory.ItemCount)},
		{"inventory_value", strconv.FormatFloat(summary.Inventory.TotalValue, 'f', 2, 64)},
		{"low_stock_items", strconv.Itoa(len(summary.Inventory.LowStock))},
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
