// Package rbac holds the static role→permission policy. It is loaded once
// at startup and never mutated, so every lookup is safe for concurrent use.
package rbac

import (
	"strings"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// Permission describes one grantable capability. Name and Description are
// display metadata for the admin UI; only ID is checked at runtime.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const (
	PermCashFlowView     = "cash-flow.view"
	PermCashFlowManage   = "cash-flow.manage"
	PermCashFlowForecast = "cash-flow.forecast"
	PermInventoryView    = "inventory.view"
	PermInventoryManage  = "inventory.manage"
	PermInventoryOrders  = "inventory.orders"
	PermUsersView        = "users.view"
	PermUsersManage      = "users.manage"
	PermReportsView      = "reports.view"
	PermReportsGenerate  = "reports.generate"
)

// Catalogue is the full set of defined permissions, keyed by ID.
var Catalogue = map[string]Permission{
	PermCashFlowView:     {ID: PermCashFlowView, Name: "View Cash Flow", Description: "Can view cash flow data and reports"},
	PermCashFlowManage:   {ID: PermCashFlowManage, Name: "Manage Cash Flow", Description: "Can manage cash flow entries and transactions"},
	PermCashFlowForecast: {ID: PermCashFlowForecast, Name: "Access Cash Flow Forecasts", Description: "Can access AI-powered cash flow forecasts"},
	PermInventoryView:    {ID: PermInventoryView, Name: "View Inventory", Description: "Can view inventory data and reports"},
	PermInventoryManage:  {ID: PermInventoryManage, Name: "Manage Inventory", Description: "Can manage inventory items and stock levels"},
	PermInventoryOrders:  {ID: PermInventoryOrders, Name: "Manage Orders", Description: "Can process and manage orders"},
	PermUsersView:        {ID: PermUsersView, Name: "View Users", Description: "Can view user information"},
	PermUsersManage:      {ID: PermUsersManage, Name: "Manage Users", Description: "Can create, edit, and delete users"},
	PermReportsView:      {ID: PermReportsView, Name: "View Reports", Description: "Can view financial and inventory reports"},
	PermReportsGenerate:  {ID: PermReportsGenerate, Name: "Generate Reports", Description: "Can generate and export reports"},
}

// rolePermissions assigns each role its permission set. Admin receives the
// whole catalogue (see init). An unknown role resolves to nil, which every
// lookup treats as "no permissions".
var rolePermissions = map[domain.Role]map[string]struct{}{
	domain.RoleAdmin: {},
	domain.RoleManager: permSet(
		PermCashFlowView, PermCashFlowManage, PermCashFlowForecast,
		PermInventoryView, PermInventoryManage, PermInventoryOrders,
		PermReportsView, PermReportsGenerate,
	),
	domain.RoleAccountant: permSet(
		PermCashFlowView, PermCashFlowManage, PermCashFlowForecast,
		PermReportsView, PermReportsGenerate,
	),
	domain.RoleInventoryManager: permSet(
		PermInventoryView, PermInventoryManage, PermInventoryOrders,
		PermReportsView,
	),
	domain.RoleViewer: permSet(
		PermCashFlowView, PermInventoryView, PermReportsView,
	),
}

func init() {
	admin := make(map[string]struct{}, len(Catalogue))
	for id := range Catalogue {
		admin[id] = struct{}{}
	}
	rolePermissions[domain.RoleAdmin] = admin
}

func permSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// KnownRole reports whether role is part of the enumeration the policy
// covers. Tokens carrying anything else are treated as no session at all.
func KnownRole(role domain.Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

// HasPermission reports whether role holds the given permission.
// Unknown roles and unknown permission IDs are both denied.
func HasPermission(role domain.Role, permissionID string) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, granted := set[permissionID]
	return granted
}

// Permissions returns the catalogue entries granted to role, for the
// admin UI. The slice order follows the catalogue map and is unspecified.
func Permissions(role domain.Role) []Permission {
	set := rolePermissions[role]
	perms := make([]Permission, 0, len(set))
	for id := range set {
		perms = append(perms, Catalogue[id])
	}
	return perms
}

// routePermissions maps each protected route prefix to the permission a
// role must hold to enter it. Route access derives entirely from the
// permission table so the two can never drift apart.
var routePermissions = []struct {
	prefix     string
	permission string
}{
	{"/cashflow", PermCashFlowView},
	{"/inventory", PermInventoryView},
	{"/reports", PermReportsView},
	{"/users", PermUsersView},
	{"/chat", PermCashFlowForecast},
}

// RouteAllowed reports whether role may enter the given path. /dashboard is
// open to every known role; prefixes without an entry fall back to deny for
// unknown roles and allow for known ones.
func RouteAllowed(role domain.Role, path string) bool {
	if _, known := rolePermissions[role]; !known {
		return false
	}
	for _, rp := range routePermissions {
		if strings.HasPrefix(path, rp.prefix) {
			return HasPermission(role, rp.permission)
		}
	}
	return true
}

// LandingPath returns the page a user should see right after login.
func LandingPath(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "/users"
	case domain.RoleManager, domain.RoleAccountant:
		return "/cashflow/dashboard"
	case domain.RoleInventoryManager:
		return "/inventory/dashboard"
	default:
		return "/dashboard"
	}
}
