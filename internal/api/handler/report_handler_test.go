package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/domain"
)

type stubReportService struct {
	summary *domain.BusinessSummary
	csv     []byte
}

func (s *stubReportService) Summary(ctx context.Context) (*domain.BusinessSummary, error) {
	return s.summary, nil
}

func (s *stubReportService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.csv, nil
}

func TestReportHandler_Summary(t *testing.T) {
	h := NewReportHandler(&stubReportService{
		summary: &domain.BusinessSummary{GeneratedAt: time.Now().UTC()},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary", nil)
	rec := httptest.NewRecorder()
	if err := h.Summary(e.NewContext(req, rec)); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "generated_at") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestReportHandler_ExportCSV(t *testing.T) {
	h := NewReportHandler(&stubReportService{
		csv: []byte("metric,value\ntotal_sales,100.00\n"),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports/export", nil)
	rec := httptest.NewRecorder()
	if err := h.ExportCSV(e.NewContext(req, rec)); err != nil {
		t.Fatalf("export: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q, want text/csv", ct)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".csv") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "total_sales") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
