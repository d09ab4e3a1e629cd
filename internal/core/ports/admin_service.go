package ports

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// UserWithRole pairs a user with its resolved role name for listings.
type UserWithRole struct {
	User     *domain.User
	RoleName string
}

// UserService defines admin-facing user management.
type UserService interface {
	List(ctx context.Context) ([]UserWithRole, error)
	AssignRole(ctx context.Context, userID, roleID string) error
	SetActive(ctx context.Context, userID string, active bool) error
	// Delete removes a user. Deleting the acting admin's own account is
	// refused with domain.ErrSelfDeletion.
	Delete(ctx context.Context, actor Actor, userID string) error
}

// CreateRoleInput carries the fields for a new custom role.
type CreateRoleInput struct {
	Name        string
	Description string
	Permissions []string
}

// UpdateRoleInput is the typed partial-update for a role. The name of an
// existing role is not updatable.
type UpdateRoleInput struct {
	Description *string
	Permissions *[]string
}

// RoleService defines admin-facing role management. Reserved roles
// (admin, editor, viewer) cannot be modified or deleted.
type RoleService interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	Update(ctx context.Context, roleID string, input UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, roleID string) error
}

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalWebsites     int64 `json:"total_websites"`
	PublishedWebsites int64 `json:"published_websites"`
	TotalRoles        int64 `json:"total_roles"`
}

// StatsService exposes the admin dashboard counters.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
