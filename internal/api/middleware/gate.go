package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/api/metrics"
	"github.com/flowiq/flowiq/internal/api/session"
	"github.com/flowiq/flowiq/internal/core/rbac"
)

// Context keys set by the gate for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// publicPrefixes lists paths reachable without a session. "/" is matched
// exactly, never as a prefix, so it cannot open up the whole tree.
var publicPrefixes = []string{
	"/login",
	"/register",
	"/forgot-password",
	"/reset-password",
	"/auth/login",
	"/auth/register",
	"/auth/me",
	"/auth/refresh",
	"/auth/logout",
	"/health",
	"/metrics",
	"/static",
}

func isPublic(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gate is the per-request session check. Public paths pass through; every
// other request needs a valid cookie and a role permitted for the path.
// Unauthenticated requests are sent to login with the original path as a
// callback; authenticated-but-unauthorized ones land on the dashboard.
// The gate itself never writes cookies or other state.
func Gate(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if isPublic(path) {
				return next(c)
			}

			claims := sessions.Claims(c)
			if claims == nil || !rbac.KnownRole(claims.Role) {
				metrics.GateDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusFound, "/login?callback="+url.QueryEscape(path))
			}

			if !rbac.RouteAllowed(claims.Role, path) {
				metrics.GateDecisionsTotal.WithLabelValues("forbidden").Inc()
				return c.Redirect(http.StatusFound, "/dashboard")
			}

			metrics.GateDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}
