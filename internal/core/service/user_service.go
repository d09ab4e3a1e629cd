package service

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// UserService implements admin user management.
type UserService struct {
	users ports.UserRepository
	roles ports.RoleRepository
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// List returns every user together with its resolved role name. Users whose
// role reference no longer resolves are reported as role-less.
func (s *UserService) List(ctx context.Context) ([]ports.UserWithRole, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.UserWithRole, 0, len(users))
	for _, u := range users {
		roleName := ""
		if u.RoleID != "" {
			if role, err := s.roles.FindByID(ctx, u.RoleID); err == nil {
				roleName = role.Name
			}
		}
		out = append(out, ports.UserWithRole{User: u, RoleName: roleName})
	}
	return out, nil
}

// AssignRole points a user at a role. Both sides must exist.
func (s *UserService) AssignRole(ctx context.Context, userID, roleID string) error {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.users.UpdateRole(ctx, userID, roleID)
}

// SetActive toggles the account flag. Deactivated accounts fail
// authentication on their next request.
func (s *UserService) SetActive(ctx context.Context, userID string, active bool) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.users.UpdateStatus(ctx, userID, active)
}

// Delete removes a user record. An admin deleting its own account is
// refused; everything else is a hard delete.
func (s *UserService) Delete(ctx context.Context, actor ports.Actor, userID string) error {
	if actor.User != nil && actor.User.ID == userID {
		return domain.ErrSelfDeletion
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}
