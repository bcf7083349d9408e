package entity

// Role represents the type of role an account can have in the storefront.
type Role string

const (
	// RoleClient indicates a regular shopper account.
	RoleClient Role = "client"
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
	case RoleClient, RoleAdmin:
		return true
	default:
		return false
	}
}
