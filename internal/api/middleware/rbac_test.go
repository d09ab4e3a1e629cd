package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

func rbacContext(t *testing.T, user *domain.User, role *domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserKey, user)
	}
	if role != nil {
		c.Set(RoleKey, role)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := rbacContext(t,
		&domain.User{ID: "u1", IsActive: true},
		&domain.Role{Name: domain.RoleAdmin},
	)

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	c, _ := rbacContext(t,
		&domain.User{ID: "u1", IsActive: true},
		&domain.Role{Name: domain.RoleViewer},
	)

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	c, _ := rbacContext(t, nil, nil)

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequirePermission_Allows(t *testing.T) {
	c, rec := rbacContext(t,
		&domain.User{ID: "u1", IsActive: true},
		&domain.Role{Name: "publisher", Permissions: []string{domain.PermPublishWebsite}},
	)

	handler := RequirePermission(domain.PermPublishWebsite)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequirePermission_Forbids(t *testing.T) {
	c, _ := rbacContext(t,
		&domain.User{ID: "u1", IsActive: true},
		&domain.Role{Name: domain.RoleViewer, Permissions: []string{domain.PermReadWebsite}},
	)

	handler := RequirePermission(domain.PermManageUsers)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequirePermission_InactiveUser(t *testing.T) {
	c, _ := rbacContext(t,
		&domain.User{ID: "u1", IsActive: false},
		&domain.Role{Name: domain.RoleAdmin, Permissions: domain.AllPermissions},
	)

	handler := RequirePermission(domain.PermReadWebsite)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
