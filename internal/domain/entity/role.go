package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "user"
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
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
