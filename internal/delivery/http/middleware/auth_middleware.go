package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the request principal from the access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// ResolvePrincipal places a principal on every request context. A valid
// bearer token yields the authenticated account; anything else resolves
// to the guest pseudo-identity instead of failing, since browsing and
// carting are open to anonymous visitors.
func (m *AuthMiddleware) ResolvePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GuestPrincipal()

		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.tokenSvc.Validate(tokenString); err == nil {
				principal = deliverycontext.Principal{
					Identity:      entity.IdentityForEmail(claims.Email),
					Name:          claims.Name,
					Role:          claims.Role,
					Authenticated: true,
				}
			}
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Authenticate rejects requests whose principal is not an authenticated
// account. It must be used AFTER ResolvePrincipal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c.Request().Context())
		if !principal.Authenticated {
			return response.Unauthorized(c, "UNAUTHORIZED", "A valid access token is required")
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal's role.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c.Request().Context())
			if principal.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
