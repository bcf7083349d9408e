package context

import (
	"context"

	"storefront/internal/domain/entity"
)

// KeyPrincipal is the key for storing the request principal in context.
const KeyPrincipal ContextKey = "principal"

// Principal is the authenticated caller of a request, or the guest
// pseudo-identity when no valid token accompanied it.
type Principal struct {
	Identity      entity.Identity
	Name          string
	Role          entity.Role
	Authenticated bool
}

// GuestPrincipal is the principal assigned to anonymous requests.
func GuestPrincipal() Principal {
	return Principal{
		Identity:      entity.GuestIdentity,
		Role:          entity.RoleClient,
		Authenticated: false,
	}
}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the request principal, falling back to guest.
func GetPrincipal(ctx context.Context) Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(Principal); ok {
		return principal
	}

	return GuestPrincipal()
}

// CurrentIdentity is the single scoping-key resolver: every store that
// partitions its records by identity derives the key here, so two
// stores can never disagree about whose data a request touches.
func CurrentIdentity(ctx context.Context) entity.Identity {
	principal := GetPrincipal(ctx)
	if !principal.Authenticated {
		return entity.GuestIdentity
	}

	return principal.Identity
}
