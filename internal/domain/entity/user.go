// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the profile of the account that owns the current session.
type User struct {
	ID       string `json:"id"`       // Backend identifier of the account.
	Username string `json:"username"` // Display name shown in the session badge and on reviews.
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"userType"` // Serialized under the backend's field name.
}

// Session is the identity the client acts as. A Guest session carries no
// user and no token; any other role carries both.
type Session struct {
	User  User
	Token string
}

// GuestSession returns the anonymous session.
func GuestSession() Session {
	return Session{User: User{Role: RoleGuest}}
}

// Role returns the effective role of the session.
func (s Session) Role() Role {
	if s.Token == "" || s.User.ID == "" {
		return RoleGuest
	}

	return s.User.Role
}

// IsGuest reports whether the session is anonymous.
func (s Session) IsGuest() bool { return s.Role() == RoleGuest }

// IsUser reports whether the session belongs to a regular user.
func (s Session) IsUser() bool { return s.Role() == RoleUser }

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.Role() == RoleAdmin }

// Valid reports whether the session is either a clean guest session or a
// fully populated authenticated one. Partially filled sessions are invalid.
func (s Session) Valid() bool {
	if s.Token == "" && s.User.ID == "" {
		return true
	}

	return s.Token != "" && s.User.ID != "" && (s.User.Role == RoleUser || s.User.Role == RoleAdmin)
}
