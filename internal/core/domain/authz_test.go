package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestAuthorize_NilUser(t *testing.T) {
	err := Authorize(nil, &Role{Name: RoleAdmin, Permissions: AllPermissions}, Permission(PermReadWebsite))
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorize_InactiveUser(t *testing.T) {
	user := &User{ID: "u1", IsActive: false}
	err := Authorize(user, &Role{Name: RoleAdmin, Permissions: AllPermissions}, RoleIn(RoleAdmin))
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorize_RoleMatch(t *testing.T) {
	user := &User{ID: "u1", IsActive: true}
	role := &Role{Name: RoleEditor}

	if err := Authorize(user, role, RoleIn(RoleAdmin, RoleEditor)); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if err := Authorize(user, role, RoleIn(RoleAdmin)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_NilRole(t *testing.T) {
	user := &User{ID: "u1", IsActive: true}

	if err := Authorize(user, nil, RoleIn(RoleViewer)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("role requirement without role: expected ErrForbidden, got %v", err)
	}
	if err := Authorize(user, nil, Permission(PermReadWebsite)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("permission requirement without role: expected ErrForbidden, got %v", err)
	}
}

// TestAuthorize_PermissionDecisions drives Authorize with randomized
// permission sets and checks the decision against direct set membership.
func TestAuthorize_PermissionDecisions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	user := &User{ID: "u1", IsActive: true}

	for i := 0; i < 200; i++ {
		var granted []string
		for _, p := range AllPermissions {
			if rng.Intn(2) == 0 {
				granted = append(granted, p)
			}
		}
		role := &Role{Name: "custom", Permissions: granted}

		for _, p := range AllPermissions {
			want := false
			for _, g := range granted {
				if g == p {
					want = true
					break
				}
			}

			err := Authorize(user, role, Permission(p))
			if want && err != nil {
				t.Fatalf("iteration %d: permission %q granted but denied: %v", i, p, err)
			}
			if !want && !errors.Is(err, ErrForbidden) {
				t.Fatalf("iteration %d: permission %q missing but allowed", i, p)
			}
		}
	}
}

func TestRole_HasPermission_NilReceiver(t *testing.T) {
	var role *Role
	if role.HasPermission(PermReadWebsite) {
		t.Fatalf("nil role must grant nothing")
	}
}
