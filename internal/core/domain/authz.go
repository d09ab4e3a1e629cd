package domain

// RequirementKind selects how a Requirement is evaluated.
type RequirementKind int

const (
	// RequireRole demands an exact role-name match.
	RequireRole RequirementKind = iota
	// RequirePermission demands that the role's permission set contains a tag.
	RequirePermission
)

// Requirement is a single access-control demand placed on a request.
type Requirement struct {
	Kind RequirementKind
	// Names holds the accepted role names for RequireRole.
	Names []string
	// Permission holds the required tag for RequirePermission.
	Permission string
}

// RoleIn builds a Requirement satisfied by any of the given role names.
func RoleIn(names ...string) Requirement {
	return Requirement{Kind: RequireRole, Names: names}
}

// Permission builds a Requirement satisfied by a role granting perm.
func Permission(perm string) Requirement {
	return Requirement{Kind: RequirePermission, Permission: perm}
}

// Authorize is the per-request access decision. It is a pure function of the
// resolved identity, its role (either may be nil) and the requirement:
//
//   - nil or deactivated user        → ErrUnauthenticated
//   - role-name mismatch             → ErrForbidden
//   - missing role or permission tag → ErrForbidden
//   - otherwise                      → nil (allow)
//
// Ownership rules (owner-or-admin) are layered on top by each resource
// service; Authorize only establishes role-level access.
func Authorize(user *User, role *Role, req Requirement) error {
	if user == nil || !user.IsActive {
		return ErrUnauthenticated
	}

	switch req.Kind {
	case RequireRole:
		if role == nil {
			return ErrForbidden
		}
		for _, name := range req.Names {
			if role.Name == name {
				return nil
			}
		}
		return ErrForbidden
	case RequirePermission:
		if !role.HasPermission(req.Permission) {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
