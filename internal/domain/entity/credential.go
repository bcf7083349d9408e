// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credential is one entry in the account registry. The email acts as the
// unique key; credentials are appended by registration and never deleted
// or mutated afterwards.
type Credential struct {
	Email        string `json:"email"`        // Unique login identifier.
	PasswordHash string `json:"passwordHash"` // bcrypt hash of the account password.
	Role         Role   `json:"role"`         // Either "client" or "admin"; registration always yields "client".
	Name         string `json:"name"`         // Display name shown in greetings and order forms.
}

// Profile is the non-secret view of a credential that an authenticated
// session carries around.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Profile derives the session-facing view of this credential.
func (c *Credential) Profile() Profile {
	return Profile{
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}
