package domain

import "slices"

// MemberRole represents a member's role inside an organization
type MemberRole string

const (
	// RoleOwner is assigned to the creator of an organization and can manage everything including billing
	RoleOwner MemberRole = "owner"

	// RoleAdmin can manage members, API keys, and organization settings
	RoleAdmin MemberRole = "admin"

	// RoleAnalyst can submit scoring requests and read results
	RoleAnalyst MemberRole = "analyst"

	// RoleMember has basic access to the organization's data
	RoleMember MemberRole = "member"

	// RoleViewer has read-only access to dashboards and results
	RoleViewer MemberRole = "viewer"
)

// ValidRoles contains all valid member roles
var ValidRoles = []MemberRole{RoleOwner, RoleAdmin, RoleAnalyst, RoleMember, RoleViewer}

// IsValidRole checks if a given role is valid
func IsValidRole(role MemberRole) bool {
	return slices.Contains(ValidRoles, role)
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role MemberRole) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...MemberRole) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
