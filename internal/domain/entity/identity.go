package entity

// Identity is the key that partitions one user's persisted cart and order
// records from another's. It is the account email for authenticated users,
// or the fixed anonymous placeholder for everyone else.
type Identity string

// GuestIdentity is the pseudo-identity used for anonymous sessions.
const GuestIdentity Identity = "guest"

// IdentityForEmail derives the scoping identity for an email address,
// falling back to the guest pseudo-identity when the email is empty.
func IdentityForEmail(email string) Identity {
	if email == "" {
		return GuestIdentity
	}

	return Identity(email)
}

// String returns the identity as the raw scoping-key segment.
func (i Identity) String() string {
	return string(i)
}

// IsGuest reports whether this is the anonymous pseudo-identity.
func (i Identity) IsGuest() bool {
	return i == GuestIdentity || i == ""
}
