package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/rbac"
)

func runPermissionCheck(t *testing.T, role any, permission string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(CtxRole, role)
	}

	reached := false
	handler := RequirePermission(permission)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, reached
}

func TestRequirePermission_Allows(t *testing.T) {
	rec, reached := runPermissionCheck(t, domain.RoleAccountant, rbac.PermCashFlowManage)
	if !reached {
		t.Fatalf("accountant must hold cash-flow.manage")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequirePermission_Forbids(t *testing.T) {
	rec, reached := runPermissionCheck(t, domain.RoleViewer, rbac.PermCashFlowManage)
	if reached {
		t.Fatalf("viewer must not hold cash-flow.manage")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequirePermission_MissingClaims(t *testing.T) {
	rec, reached := runPermissionCheck(t, nil, rbac.PermReportsView)
	if reached {
		t.Fatalf("request without claims must be denied")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
