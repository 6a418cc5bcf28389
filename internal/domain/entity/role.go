// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular staff account.
	RoleUser Role = "user"
	// RoleReceptionist indicates a front-desk receptionist account.
	RoleReceptionist Role = "receptionist"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleReceptionist, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a stored string into a Role, falling back to
// RoleUser for unknown values so a bad row never produces an invalid role.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
