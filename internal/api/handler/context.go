package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/api/middleware"
	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: the user must be
// present, which proves the middleware ran on this route.
func ctxActor(c echo.Context) (ports.Actor, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.RoleKey).(*domain.Role)
	return ports.Actor{User: user, Role: role}, nil
}
