package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

func TestSeeder_CreatesReservedRoles(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	seeder := NewSeeder(users, roles, testLogger())

	if err := seeder.Run(context.Background(), "", ""); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, name := range []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer} {
		if _, err := roles.FindByName(context.Background(), name); err != nil {
			t.Fatalf("reserved role %q not seeded: %v", name, err)
		}
	}

	admin, _ := roles.FindByName(context.Background(), domain.RoleAdmin)
	for _, perm := range domain.AllPermissions {
		if !admin.HasPermission(perm) {
			t.Fatalf("admin role missing permission %q", perm)
		}
	}

	viewer, _ := roles.FindByName(context.Background(), domain.RoleViewer)
	if viewer.HasPermission(domain.PermCreateWebsite) {
		t.Fatalf("viewer must not hold create permission")
	}
}

func TestSeeder_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	seeder := NewSeeder(users, roles, testLogger())

	for i := 0; i < 3; i++ {
		if err := seeder.Run(context.Background(), "root@example.com", "s3cret-pass"); err != nil {
			t.Fatalf("run %d returned error: %v", i, err)
		}
	}

	count, _ := roles.Count(context.Background())
	if count != 3 {
		t.Fatalf("expected exactly 3 roles after repeated runs, got %d", count)
	}
	userCount, _ := users.Count(context.Background())
	if userCount != 1 {
		t.Fatalf("expected exactly 1 admin user after repeated runs, got %d", userCount)
	}
}

func TestSeeder_AdminAccount(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	seeder := NewSeeder(users, roles, testLogger())

	if err := seeder.Run(context.Background(), "root@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	admin, err := users.FindByEmail(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("admin account not created: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("admin password hash mismatch: %v", err)
	}

	adminRole, _ := roles.FindByName(context.Background(), domain.RoleAdmin)
	if admin.RoleID != adminRole.ID {
		t.Fatalf("admin user not linked to admin role")
	}
	if !admin.IsActive {
		t.Fatalf("admin account must be active")
	}
}

func TestSeeder_NoAdminWithoutCredentials(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	seeder := NewSeeder(users, roles, testLogger())

	if err := seeder.Run(context.Background(), "root@example.com", ""); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	count, _ := users.Count(context.Background())
	if count != 0 {
		t.Fatalf("no admin should be created without a password, got %d users", count)
	}
}
