package service

import (
	"context"
	"strings"
	"time"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// RoleService implements admin role management. The reserved roles seeded at
// startup (admin, editor, viewer) are immutable through this service.
type RoleService struct {
	roles ports.RoleRepository
}

func NewRoleService(roles ports.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

// Create adds a custom role. The name must not collide with an existing role
// and every permission must belong to the fixed vocabulary.
func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrValidation
	}
	if domain.IsReserved(strings.ToLower(name)) {
		return nil, domain.ErrReservedRole
	}
	if err := validatePermissions(input.Permissions); err != nil {
		return nil, err
	}
	if _, err := s.roles.FindByName(ctx, name); err == nil {
		return nil, domain.ErrRoleExists
	}

	now := time.Now().UTC()
	return s.roles.Create(ctx, &domain.Role{
		Name:        name,
		Description: input.Description,
		Permissions: input.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Update mutates a custom role's description and/or permission set.
func (s *RoleService) Update(ctx context.Context, roleID string, input ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if domain.IsReserved(role.Name) {
		return nil, domain.ErrReservedRole
	}
	if input.Permissions != nil {
		if err := validatePermissions(*input.Permissions); err != nil {
			return nil, err
		}
	}

	if err := s.roles.Update(ctx, roleID, ports.RoleUpdate{
		Description: input.Description,
		Permissions: input.Permissions,
	}); err != nil {
		return nil, err
	}
	return s.roles.FindByID(ctx, roleID)
}

// Delete removes a custom role. Users still referencing the removed role
// behave as role-less: every permission check fails closed.
func (s *RoleService) Delete(ctx context.Context, roleID string) error {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if domain.IsReserved(role.Name) {
		return domain.ErrReservedRole
	}
	return s.roles.Delete(ctx, roleID)
}

func validatePermissions(perms []string) error {
	for _, p := range perms {
		if !domain.ValidPermission(p) {
			return domain.ErrUnknownPermission
		}
	}
	return nil
}
