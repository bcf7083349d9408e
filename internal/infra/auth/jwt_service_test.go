package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateValidateRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Generate(entity.Profile{
		Email: "admin@shop.com",
		Name:  "Admin User",
		Role:  entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@shop.com", claims.Email)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_ValidateRejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Generate(entity.Profile{Email: "client@shop.com", Role: entity.RoleClient})
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")
	require.Error(t, err)
}

func TestJWTService_ValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other := &config.Config{}
	other.SecretKey.Access = "different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.Generate(entity.Profile{Email: "client@shop.com", Role: entity.RoleClient})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
}

func TestJWTService_ValidateRejectsExpiredToken(t *testing.T) {
	svc := &jwtService{secret: "test-secret", accessTTL: -time.Hour}

	token, err := svc.Generate(entity.Profile{Email: "client@shop.com", Role: entity.RoleClient})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
}
