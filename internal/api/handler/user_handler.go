package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/ports"
	"github.com/flowiq/flowiq/internal/core/rbac"
)

// UserHandler backs the admin user-management screen.
type UserHandler struct {
	users ports.UserAdminService
}

func NewUserHandler(users ports.UserAdminService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role" validate:"required"`
}

type updateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role" validate:"required"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users})
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), req.Email, req.Password, req.Name, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{User: user})
}

func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), req.Name, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	target := c.Param("id")
	if target == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot delete your own account")
	}

	if err := h.users.Delete(c.Request().Context(), target); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Roles lists the assignable roles and their permissions, so the admin
// screen doesn't hardcode the catalogue.
func (h *UserHandler) Roles(c echo.Context) error {
	out := make([]map[string]any, 0, len(domain.Roles))
	for _, role := range domain.Roles {
		out = append(out, map[string]any{
			"role":        role,
			"permissions": rbac.Permissions(role),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"roles": out})
}
