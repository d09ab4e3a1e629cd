package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/api/metrics"
	"github.com/sitesmith/website-builder/internal/core/domain"
)

// RequireRole allows only users whose role name is in the given set.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return requirement(domain.RoleIn(roles...))
}

// RequirePermission allows only users whose role grants the permission.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return requirement(domain.Permission(permission))
}

func requirement(req domain.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserKey).(*domain.User)
			role, _ := c.Get(RoleKey).(*domain.Role)

			if err := domain.Authorize(user, role, req); err != nil {
				reason := "forbidden"
				if err == domain.ErrUnauthenticated {
					reason = "unauthenticated"
				}
				metrics.AuthDenialsTotal.WithLabelValues(reason).Inc()
				return err
			}
			return next(c)
		}
	}
}
