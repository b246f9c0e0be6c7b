package ports

import (
	"context"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// AuthService orchestrates registration, login, and session lookups.
// Returned users are always sanitized (no password hash).
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	// Login returns the user and a signed session token. Unknown email and
	// wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// GetUserByID returns (nil, nil) when the user does not exist; an error
	// only signals a storage failure.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// UserAdminService covers the admin user-management screen.
type UserAdminService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, error)
	Update(ctx context.Context, id, name string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
