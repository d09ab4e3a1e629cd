package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// Seeder runs the idempotent bootstrap migration: reserved roles with their
// permission sets, and optionally an initial admin account. Existence checks
// make repeated runs no-ops.
type Seeder struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewSeeder(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{users: users, roles: roles, logger: logger}
}

// reservedRoleSet returns the permission sets of the three reserved roles.
func reservedRoleSet() map[string]struct {
	description string
	permissions []string
} {
	return map[string]struct {
		description string
		permissions []string
	}{
		domain.RoleAdmin: {
			description: "Full access to all resources",
			permissions: domain.AllPermissions,
		},
		domain.RoleEditor: {
			description: "Can create, edit and publish websites",
			permissions: []string{
				domain.PermCreateWebsite,
				domain.PermReadWebsite,
				domain.PermUpdateWebsite,
				domain.PermDeleteWebsite,
				domain.PermPublishWebsite,
				domain.PermViewAnalytics,
			},
		},
		domain.RoleViewer: {
			description: "Read-only access to websites",
			permissions: []string{domain.PermReadWebsite},
		},
	}
}

// Run executes the migration. adminEmail/adminPassword may be empty, in
// which case no admin account is created.
func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) error {
	adminRoleID := ""
	for name, def := range reservedRoleSet() {
		existing, err := s.roles.FindByName(ctx, name)
		if err == nil {
			if name == domain.RoleAdmin {
				adminRoleID = existing.ID
			}
			continue
		}

		now := time.Now().UTC()
		created, err := s.roles.Create(ctx, &domain.Role{
			Name:        name,
			Description: def.description,
			Permissions: def.permissions,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
		if name == domain.RoleAdmin {
			adminRoleID = created.ID
		}
		s.logger.Info().Str("role", name).Msg("seeded reserved role")
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	if _, err := s.users.FindByEmail(ctx, adminEmail); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := s.users.Create(ctx, &domain.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		RoleID:       adminRoleID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	s.logger.Info().Str("email", adminEmail).Msg("seeded admin user")
	return nil
}
