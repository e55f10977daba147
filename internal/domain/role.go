package domain

import "slices"

// Role is an authorization role carried in the caller's token.
type Role string

const (
	// RoleAdmin manages tenants and role assignments and may act on any tenant
	RoleAdmin Role = "admin"

	// RoleManager maintains customers and users inside their own tenant
	RoleManager Role = "manager"

	// RoleViewer has read-only access to their own tenant's data
	RoleViewer Role = "viewer"
)

var ValidRoles = []Role{RoleAdmin, RoleManager, RoleViewer}

func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	return slices.ContainsFunc(requiredRoles, func(required Role) bool {
		return HasRole(roles, required)
	})
}
