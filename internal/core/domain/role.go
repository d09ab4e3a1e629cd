package domain

import (
	"errors"
	"time"
)

// Reserved role names seeded at startup. They cannot be renamed, updated or
// deleted through the API.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Permission vocabulary. Permissions are plain string tags held on a role;
// they are not persisted as independent documents.
const (
	PermCreateWebsite  = "create_website"
	PermReadWebsite    = "read_website"
	PermUpdateWebsite  = "update_website"
	PermDeleteWebsite  = "delete_website"
	PermPublishWebsite = "publish_website"
	PermManageUsers    = "manage_users"
	PermManageRoles    = "manage_roles"
	PermViewAnalytics  = "view_analytics"
)

var ErrRoleNotFound = errors.New("role not found")
var ErrRoleExists = errors.New("role name already exists")
var ErrReservedRole = errors.New("cannot modify a reserved role")
var ErrUnknownPermission = errors.New("unknown permission")

// AllPermissions is the full vocabulary, in a stable order.
var AllPermissions = []string{
	PermCreateWebsite,
	PermReadWebsite,
	PermUpdateWebsite,
	PermDeleteWebsite,
	PermPublishWebsite,
	PermManageUsers,
	PermManageRoles,
	PermViewAnalytics,
}

// Role is a named bundle of permission tags assigned to users.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasPermission reports whether the role grants the given permission tag.
func (r *Role) HasPermission(perm string) bool {
	if r == nil {
		return false
	}
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// IsReserved reports whether name is one of the seeded default roles.
func IsReserved(name string) bool {
	return name == RoleAdmin || name == RoleEditor || name == RoleViewer
}

// ValidPermission reports whether perm belongs to the vocabulary.
func ValidPermission(perm string) bool {
	for _, p := range AllPermissions {
		if p == perm {
			return true
		}
	}
	return false
}
