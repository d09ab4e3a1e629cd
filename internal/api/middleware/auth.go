package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/api/metrics"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// Context keys under which the authenticated identity is stored.
const (
	UserKey = "auth_user"
	RoleKey = "auth_role"
)

// Auth validates the bearer token and injects the authenticated user and
// role into the request context. Tokens are verified against the current
// user record, so disabled accounts are rejected even with a valid token.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, role, err := auth.VerifyToken(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserKey, user)
			c.Set(RoleKey, role)

			return next(c)
		}
	}
}
