package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/flowiq/flowiq/internal/api/middleware"
	"github.com/flowiq/flowiq/internal/core/domain"
)

type stubUserAdminService struct {
	users   []*domain.User
	created *domain.User
	deleted []string
}

func (s *stubUserAdminService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *stubUserAdminService) Create(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, error) {
	s.created = &domain.User{ID: "new", Email: email, Name: name, Role: role}
	return s.created, nil
}

func (s *stubUserAdminService) Update(ctx context.Context, id, name string, role domain.Role) (*domain.User, error) {
	return &domain.User{ID: id, Name: name, Role: role}, nil
}

func (s *stubUserAdminService) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func userContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestUserHandler_CreateWithValidRole(t *testing.T) {
	svc := &stubUserAdminService{}
	h := NewUserHandler(svc)

	c, rec := userContext(http.MethodPost, "/users",
		`{"email":"new@example.com","password":"longenough","name":"New Hire","role":"accountant"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.created == nil || svc.created.Role != domain.RoleAccountant {
		t.Fatalf("created role = %+v, want accountant", svc.created)
	}
}

func TestUserHandler_CreateRejectsUnknownRole(t *testing.T) {
	h := NewUserHandler(&stubUserAdminService{})

	c, _ := userContext(http.MethodPost, "/users",
		`{"email":"new@example.com","password":"longenough","role":"superuser"}`)

	if err := h.Create(c); err == nil {
		t.Fatalf("unknown role must be rejected")
	}
}

func TestUserHandler_CreateRejectsShortPassword(t *testing.T) {
	h := NewUserHandler(&stubUserAdminService{})

	c, _ := userContext(http.MethodPost, "/users",
		`{"email":"new@example.com","password":"short","role":"viewer"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a short password, got %v", err)
	}
}

func TestUserHandler_DeleteRefusesOwnAccount(t *testing.T) {
	svc := &stubUserAdminService{}
	h := NewUserHandler(svc)

	c, _ := userContext(http.MethodDelete, "/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(appmiddleware.CtxUserID, "u1")

	err := h.Delete(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when deleting own account, got %v", err)
	}
	if len(svc.deleted) != 0 {
		t.Fatalf("delete must not reach the service")
	}
}

func TestUserHandler_DeleteOtherAccount(t *testing.T) {
	svc := &stubUserAdminService{}
	h := NewUserHandler(svc)

	c, rec := userContext(http.MethodDelete, "/users/u2", "")
	c.SetParamNames("id")
	c.SetParamValues("u2")
	c.Set(appmiddleware.CtxUserID, "u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "u2" {
		t.Fatalf("deleted = %v, want [u2]", svc.deleted)
	}
}

func TestUserHandler_RolesListsWholeCatalogue(t *testing.T) {
	h := NewUserHandler(&stubUserAdminService{})

	c, rec := userContext(http.MethodGet, "/users/roles", "")
	if err := h.Roles(c); err != nil {
		t.Fatalf("roles: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, role := range domain.Roles {
		if !strings.Contains(rec.Body.String(), string(role)) {
			t.Fatalf("response must mention role %s", role)
		}
	}
}
