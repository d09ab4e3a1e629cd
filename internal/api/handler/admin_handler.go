package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/core/ports"
)

// AdminHandler handles the admin-only user, role and dashboard routes.
type AdminHandler struct {
	users ports.UserService
	roles ports.RoleService
	stats ports.StatsService
}

func NewAdminHandler(users ports.UserService, roles ports.RoleService, stats ports.StatsService) *AdminHandler {
	return &AdminHandler{users: users, roles: roles, stats: stats}
}

// --- Request / Response types ---

type assignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required"`
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type createRoleRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type updateRoleRequest struct {
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}

type listUsersResponse struct {
	Data  []userResponse `json:"data"`
	Total int            `json:"total"`
}

// --- User management ---

// ListUsers handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]userResponse, len(users))
	for i, u := range users {
		data[i] = toUserResponse(u.User, u.RoleName)
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: data, Total: len(data)})
}

// AssignRole handles PUT /api/admin/users/:id/role.
//
// @Summary      Assign a role to a user
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string             true  "User ID"
// @Param        body  body  assignRoleRequest  true  "Role assignment"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.AssignRole(c.Request().Context(), c.Param("id"), req.RoleID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetActive handles PUT /api/admin/users/:id/status.
//
// @Summary      Activate or deactivate a user
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string            true  "User ID"
// @Param        body  body  setActiveRequest  true  "Activation flag"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id}/status [put]
func (h *AdminHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.SetActive(c.Request().Context(), c.Param("id"), *req.IsActive); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/admin/users/:id. Admins cannot delete
// their own account.
//
// @Summary      Delete a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Role management ---

// ListRoles handles GET /api/admin/roles.
//
// @Summary      List all roles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Role
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/roles [get]
func (h *AdminHandler) ListRoles(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// CreateRole handles POST /api/admin/roles.
//
// @Summary      Create a custom role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role definition"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/roles [post]
func (h *AdminHandler) CreateRole(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roles.Create(c.Request().Context(), ports.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// UpdateRole handles PUT /api/admin/roles/:id.
//
// @Summary      Update a custom role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Role ID"
// @Param        body  body      updateRoleRequest  true  "Fields to update"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/roles/{id} [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.roles.Update(c.Request().Context(), c.Param("id"), ports.UpdateRoleInput{
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// DeleteRole handles DELETE /api/admin/roles/:id.
//
// @Summary      Delete a custom role
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Role ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/roles/{id} [delete]
func (h *AdminHandler) DeleteRole(c echo.Context) error {
	if err := h.roles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Dashboard ---

// Dashboard handles GET /api/admin/dashboard.
//
// @Summary      Admin dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
