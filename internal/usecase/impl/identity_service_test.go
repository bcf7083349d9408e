package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_SeedCreatesDefaultAccounts(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	output, err := f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "admin@shop.com",
		Password: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Session.Role)
	assert.Equal(t, "Admin User", output.Session.Profile.Name)

	output, err = f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "client@shop.com",
		Password: "client",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, output.Session.Role)
}

func TestIdentityService_SeedIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.identity.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@shop.com",
		Password: "pw",
	})
	require.NoError(t, err)

	// A second seed must not wipe the registered account.
	require.NoError(t, f.identity.Seed(context.Background()))

	_, err = f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@shop.com",
		Password: "pw",
	})
	require.NoError(t, err)
}

func TestIdentityService_LoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "client@shop.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_LoginUnknownEmail(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@shop.com",
		Password: "client",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_RegisterAutoLogin(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	output, err := f.identity.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@shop.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.True(t, output.Session.Authenticated)
	assert.Equal(t, entity.RoleClient, output.Session.Role)

	session, err := f.identity.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "alice@shop.com", session.Profile.Email)
}

func TestIdentityService_RegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.identity.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Imposter",
		Email:    "client@shop.com",
		Password: "pw",
	})
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)

	// The rejected attempt must not add a second credential.
	raw, err := f.durable.Get(context.Background(), "userDatabase")
	require.NoError(t, err)

	var registry []entity.Credential
	require.NoError(t, json.Unmarshal(raw, &registry))

	matches := 0
	for _, credential := range registry {
		if credential.Email == "client@shop.com" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestIdentityService_SessionSurvivesRestart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "client@shop.com",
		Password: "client",
	})
	require.NoError(t, err)

	// Rebuild the whole stack over the same durable store: the session
	// must reconstruct from its mirrored fields.
	restarted := newFixtureWithStores(t, f.durable, f.session)

	session, err := restarted.identity.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "client@shop.com", session.Profile.Email)
	assert.NotEmpty(t, session.Token)
}

func TestIdentityService_LogoutClearsSession(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.identity.Login(context.Background(), &usecase.LoginInput{
		Email:    "client@shop.com",
		Password: "client",
	})
	require.NoError(t, err)

	require.NoError(t, f.identity.Logout(context.Background()))

	session, err := f.identity.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.Profile)
	assert.Equal(t, entity.RoleClient, session.Role)
}

func TestIdentityService_PasswordsStoredHashed(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	raw, err := f.durable.Get(context.Background(), "userDatabase")
	require.NoError(t, err)

	var registry []entity.Credential
	require.NoError(t, json.Unmarshal(raw, &registry))
	require.Len(t, registry, 2)

	for _, credential := range registry {
		assert.NotEqual(t, "admin", credential.PasswordHash)
		assert.NotEqual(t, "client", credential.PasswordHash)
		assert.True(t, strings.HasPrefix(credential.PasswordHash, "$2"), credential.Email)
	}
}
