package ports

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// RoleUpdate carries the mutable role fields. Nil fields are left untouched.
type RoleUpdate struct {
	Description *string
	Permissions *[]string
}

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, id string, update RoleUpdate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
