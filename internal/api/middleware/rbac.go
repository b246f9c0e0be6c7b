package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/rbac"
)

// RequirePermission enforces a fine-grained permission on an API action.
// It runs after Gate, so a missing role means the claims were never set;
// denied, like any unknown role.
func RequirePermission(permissionID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if !rbac.HasPermission(role, permissionID) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
