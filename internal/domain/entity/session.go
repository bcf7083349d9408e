package entity

// Session is the transient view of the currently signed-in account. It is
// created on login or registration, destroyed on logout, and mirrored to
// durable storage so a fresh process start can reconstruct the last one.
type Session struct {
	Authenticated bool     `json:"authenticated"`
	Role          Role     `json:"role"`
	Profile       *Profile `json:"profile"`
	Token         string   `json:"-"` // Signed access token; persisted under its own durable field.
}

// GuestSession returns the default unauthenticated session: client role,
// no profile, no token.
func GuestSession() *Session {
	return &Session{
		Authenticated: false,
		Role:          RoleClient,
		Profile:       nil,
	}
}

// Identity derives the scoping identity of this session.
func (s *Session) Identity() Identity {
	if s == nil || !s.Authenticated || s.Profile == nil {
		return GuestIdentity
	}

	return IdentityForEmail(s.Profile.Email)
}
