package service

import "storefront/internal/domain/entity"

// TokenClaims is the identity information carried by an access token.
type TokenClaims struct {
	Email string
	Name  string
	Role  entity.Role
}

// TokenService issues and validates the signed access tokens that stand
// in for the original simulated auth token.
type TokenService interface {
	// Generate creates a signed access token for a profile.
	Generate(profile entity.Profile) (string, error)

	// Validate parses and verifies a token string, returning its claims.
	Validate(tokenString string) (*TokenClaims, error)
}
