package domain

import "time"

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleManager          Role = "manager"
	RoleAccountant       Role = "accountant"
	RoleInventoryManager Role = "inventory_manager"
	RoleViewer           Role = "viewer"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RoleAdmin, RoleManager, RoleAccountant, RoleInventoryManager, RoleViewer}

// ParseRole converts a raw string into a Role, rejecting anything outside
// the enumeration.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// User models an account holder. PasswordHash is excluded from JSON so a
// user record is always safe to hand to a client.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy with the password hash stripped. The JSON tag
// already hides the hash on serialization; this is for callers that pass
// users across boundaries where the struct itself must not carry the secret.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
