package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleAdmin can manage tenants, users and system settings
	RoleAdmin Role = "admin"

	// RoleOperator can control devices and write audit entries
	RoleOperator Role = "operator"

	// RoleViewer has read-only access to dashboards and logs
	RoleViewer Role = "viewer"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleOperator, RoleViewer}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasAnyRole checks if a role is one of the required roles
func HasAnyRole(role Role, requiredRoles ...Role) bool {
	return slices.Contains(requiredRoles, role)
}
