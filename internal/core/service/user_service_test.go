package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

func TestUserService_List_ResolvesRoleNames(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	editor := roles.seed(domain.RoleEditor, domain.PermCreateWebsite)

	u1, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com", RoleID: editor.ID})
	u2, _ := users.Create(context.Background(), &domain.User{Email: "b@example.com", RoleID: "dangling"})

	svc := NewUserService(users, roles)
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}

	byID := make(map[string]string)
	for _, item := range list {
		byID[item.User.ID] = item.RoleName
	}
	if byID[u1.ID] != domain.RoleEditor {
		t.Fatalf("expected editor role name, got %q", byID[u1.ID])
	}
	if byID[u2.ID] != "" {
		t.Fatalf("dangling role reference should resolve to empty, got %q", byID[u2.ID])
	}
}

func TestUserService_AssignRole(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	editor := roles.seed(domain.RoleEditor)
	user, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com"})

	svc := NewUserService(users, roles)
	if err := svc.AssignRole(context.Background(), user.ID, editor.ID); err != nil {
		t.Fatalf("AssignRole returned error: %v", err)
	}

	updated, _ := users.FindByID(context.Background(), user.ID)
	if updated.RoleID != editor.ID {
		t.Fatalf("role not assigned: %q", updated.RoleID)
	}
}

func TestUserService_AssignRole_MissingRole(t *testing.T) {
	users := newStubUserRepo()
	user, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com"})

	svc := NewUserService(users, newStubRoleRepo())
	if err := svc.AssignRole(context.Background(), user.ID, "missing"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestUserService_AssignRole_MissingUser(t *testing.T) {
	roles := newStubRoleRepo()
	editor := roles.seed(domain.RoleEditor)

	svc := NewUserService(newStubUserRepo(), roles)
	if err := svc.AssignRole(context.Background(), "missing", editor.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_SetActive(t *testing.T) {
	users := newStubUserRepo()
	user, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com", IsActive: true})

	svc := NewUserService(users, newStubRoleRepo())
	if err := svc.SetActive(context.Background(), user.ID, false); err != nil {
		t.Fatalf("SetActive returned error: %v", err)
	}

	updated, _ := users.FindByID(context.Background(), user.ID)
	if updated.IsActive {
		t.Fatalf("expected user to be deactivated")
	}
}

func TestUserService_Delete_Self(t *testing.T) {
	users := newStubUserRepo()
	user, _ := users.Create(context.Background(), &domain.User{Email: "admin@example.com"})

	svc := NewUserService(users, newStubRoleRepo())
	if err := svc.Delete(context.Background(), adminActor(user.ID), user.ID); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if _, err := users.FindByID(context.Background(), user.ID); err != nil {
		t.Fatalf("user should still exist: %v", err)
	}
}

func TestUserService_Delete_Other(t *testing.T) {
	users := newStubUserRepo()
	admin, _ := users.Create(context.Background(), &domain.User{Email: "admin@example.com"})
	victim, _ := users.Create(context.Background(), &domain.User{Email: "other@example.com"})

	svc := NewUserService(users, newStubRoleRepo())
	if err := svc.Delete(context.Background(), adminActor(admin.ID), victim.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), victim.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
}
