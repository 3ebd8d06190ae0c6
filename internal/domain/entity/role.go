// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of account driving the client.
type Role string

const (
	// RoleGuest is an anonymous visitor without a session token.
	RoleGuest Role = "Guest"
	// RoleUser indicates a registered user who can favorite and review games.
	RoleUser Role = "User"
	// RoleAdmin indicates a content administrator.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// DefaultRoute returns the route a role lands on after login or a denied navigation.
func (r Role) DefaultRoute() Route {
	if r == RoleAdmin {
		return RouteAdmin
	}

	return RouteCatalog
}

// RoleFromUserType maps the backend's userType field onto a Role.
// Any authenticated account that is not an administrator is a regular user.
func RoleFromUserType(userType string) Role {
	if userType == string(RoleAdmin) {
		return RoleAdmin
	}

	return RoleUser
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
