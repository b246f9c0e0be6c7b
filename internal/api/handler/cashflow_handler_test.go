package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/flowiq/flowiq/internal/api/middleware"
	"github.com/flowiq/flowiq/internal/core/domain"
)

type stubCashFlowService struct {
	lastUserID string
	lastFrom   time.Time
	lastTo     time.Time
}

func (s *stubCashFlowService) AddSale(ctx context.Context, userID string, amount float64, description string) (*domain.Sale, error) {
	s.lastUserID = userID
	return &domain.Sale{ID: "s1", Amount: amount, Description: description, UserID: userID}, nil
}

func (s *stubCashFlowService) AddExpense(ctx context.Context, userID string, amount float64, description string) (*domain.Expense, error) {
	s.lastUserID = userID
	return &domain.Expense{ID: "e1", Amount: amount, Description: description, UserID: userID}, nil
}

func (s *stubCashFlowService) Sales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	s.lastFrom, s.lastTo = from, to
	return []domain.Sale{}, nil
}

func (s *stubCashFlowService) Expenses(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	s.lastFrom, s.lastTo = from, to
	return []domain.Expense{}, nil
}

func (s *stubCashFlowService) Summary(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error) {
	s.lastFrom, s.lastTo = from, to
	return &domain.CashFlowSummary{From: from, To: to}, nil
}

func cashflowContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, jsonBody(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCashFlowHandler_AddSale(t *testing.T) {
	svc := &stubCashFlowService{}
	h := NewCashFlowHandler(svc)

	c, rec := cashflowContext(http.MethodPost, "/cashflow/sales", `{"amount":120.50,"description":"counter sale"}`)
	c.Set(appmiddleware.CtxUserID, "u1")

	if err := h.AddSale(c); err != nil {
		t.Fatalf("add sale: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.lastUserID != "u1" {
		t.Fatalf("sale must carry the session user, got %q", svc.lastUserID)
	}

	var sale domain.Sale
	if err := json.Unmarshal(rec.Body.Bytes(), &sale); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sale.Amount != 120.50 {
		t.Fatalf("amount = %v, want 120.50", sale.Amount)
	}
}

func TestCashFlowHandler_AddSaleRejectsNonPositiveAmount(t *testing.T) {
	h := NewCashFlowHandler(&stubCashFlowService{})

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		c, _ := cashflowContext(http.MethodPost, "/cashflow/sales", body)
		c.Set(appmiddleware.CtxUserID, "u1")

		err := h.AddSale(c)
		var he *echo.HTTPError
		if !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestCashFlowHandler_AddSaleWithoutClaims(t *testing.T) {
	h := NewCashFlowHandler(&stubCashFlowService{})

	c, _ := cashflowContext(http.MethodPost, "/cashflow/sales", `{"amount":10}`)
	err := h.AddSale(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestCashFlowHandler_SummaryDefaultRange(t *testing.T) {
	svc := &stubCashFlowService{}
	h := NewCashFlowHandler(svc)

	c, rec := cashflowContext(http.MethodGet, "/cashflow/summary", "")
	if err := h.Summary(c); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	window := svc.lastTo.Sub(svc.lastFrom)
	if window < 29*24*time.Hour || window > 31*24*time.Hour {
		t.Fatalf("default window = %v, want about 30 days", window)
	}
}

func TestCashFlowHandler_SummaryExplicitRange(t *testing.T) {
	svc := &stubCashFlowService{}
	h := NewCashFlowHandler(svc)

	c, _ := cashflowContext(http.MethodGet, "/cashflow/summary?from=2026-01-01&to=2026-01-31", "")
	if err := h.Summary(c); err != nil {
		t.Fatalf("summary: %v", err)
	}

	if got := svc.lastFrom.Format("2006-01-02"); got != "2026-01-01" {
		t.Fatalf("from = %s, want 2026-01-01", got)
	}
	if svc.lastTo.Before(svc.lastFrom) {
		t.Fatalf("to must not precede from")
	}
	if got := svc.lastTo.Format("2006-01-02"); got != "2026-01-31" {
		t.Fatalf("to day = %s, want 2026-01-31", got)
	}
}

func TestCashFlowHandler_SummaryBadRange(t *testing.T) {
	h := NewCashFlowHandler(&stubCashFlowService{})

	for _, target := range []string{
		"/cashflow/summary?from=not-a-date",
		"/cashflow/summary?from=2026-02-01&to=2026-01-01",
	} {
		c, _ := cashflowContext(http.MethodGet, target, "")
		err := h.Summary(c)
		var he *echo.HTTPError
		if !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", target, err)
		}
	}
}
