package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/api/session"
	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/token"
)

func gateFixture(t *testing.T) (*session.Manager, *token.Codec) {
	t.Helper()
	codec := token.NewCodec("gate-secret", time.Hour)
	return session.NewManager(codec, false), codec
}

func runGate(t *testing.T, sessions *session.Manager, path, cookie string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := Gate(sessions)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate handler error: %v", err)
	}
	return rec, reached
}

func TestGate_PublicPaths(t *testing.T) {
	sessions, _ := gateFixture(t)

	for _, path := range []string{"/", "/login", "/register", "/auth/login", "/auth/register", "/auth/me", "/auth/refresh", "/auth/logout", "/health", "/metrics"} {
		if _, reached := runGate(t, sessions, path, ""); !reached {
			t.Fatalf("public path %s must pass without a session", path)
		}
	}
}

func TestGate_RootIsExactMatchOnly(t *testing.T) {
	sessions, _ := gateFixture(t)

	rec, reached := runGate(t, sessions, "/cashflow/sales", "")
	if reached {
		t.Fatalf("protected path must not ride on the root public route")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
}

func TestGate_NoCookieRedirectsToLoginWithCallback(t *testing.T) {
	sessions, _ := gateFixture(t)

	rec, reached := runGate(t, sessions, "/inventory/items", "")
	if reached {
		t.Fatalf("handler must not run without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Path != "/login" {
		t.Fatalf("redirect path = %s, want /login", loc.Path)
	}
	if got := loc.Query().Get("callback"); got != "/inventory/items" {
		t.Fatalf("callback = %q, want /inventory/items", got)
	}
}

func TestGate_TamperedAndExpiredBehaveIdentically(t *testing.T) {
	sessions, codec := gateFixture(t)

	valid, err := codec.Issue("user-1", "a@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tampered := valid[:len(valid)-2] + "xx"

	expiredCodec := token.NewCodec("gate-secret", -time.Hour)
	expired, err := expiredCodec.Issue("user-1", "a@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}

	for name, cookie := range map[string]string{"tampered": tampered, "expired": expired} {
		rec, reached := runGate(t, sessions, "/dashboard", cookie)
		if reached {
			t.Fatalf("%s token must not pass the gate", name)
		}
		loc, err := url.Parse(rec.Header().Get("Location"))
		if err != nil {
			t.Fatalf("parse location: %v", err)
		}
		if loc.Path != "/login" {
			t.Fatalf("%s token: redirect to %s, want /login", name, loc.Path)
		}
	}
}

func TestGate_AuthenticatedButUnauthorizedGoesToDashboard(t *testing.T) {
	sessions, codec := gateFixture(t)

	cookie, err := codec.Issue("user-1", "inv@example.com", domain.RoleInventoryManager)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, reached := runGate(t, sessions, "/users", cookie)
	if reached {
		t.Fatalf("inventory manager must not reach the user admin area")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirect = %s, want /dashboard", loc)
	}
}

func TestGate_ValidSessionPassesAndSetsClaims(t *testing.T) {
	sessions, codec := gateFixture(t)

	cookie, err := codec.Issue("user-7", "boss@example.com", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cashflow/summary", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Gate(sessions)(func(c echo.Context) error {
		if c.Get(CtxUserID) != "user-7" {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxEmail) != "boss@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != domain.RoleManager {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_UnknownRoleFailsClosed(t *testing.T) {
	sessions, codec := gateFixture(t)

	cookie, err := codec.Issue("user-9", "x@example.com", domain.Role("superuser"))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, reached := runGate(t, sessions, "/dashboard", cookie)
	if reached {
		t.Fatalf("unknown role must not pass the gate")
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Path != "/login" {
		t.Fatalf("unknown role must be treated as no session, redirected to %s", loc.Path)
	}
}
