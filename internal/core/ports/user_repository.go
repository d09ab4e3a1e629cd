package ports

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the user's role reference. An empty roleID clears it.
	UpdateRole(ctx context.Context, id, roleID string) error
	UpdateStatus(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
