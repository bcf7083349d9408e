package kvrepo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionRepository_LoadEmptyStoreYieldsGuest(t *testing.T) {
	repo := NewSessionRepository(memory.NewStore(), discardLogger())

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.Equal(t, entity.RoleClient, session.Role)
	assert.Nil(t, session.Profile)
}

func TestSessionRepository_SaveLoadRoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store, discardLogger())
	ctx := context.Background()

	saved := &entity.Session{
		Authenticated: true,
		Role:          entity.RoleAdmin,
		Profile:       &entity.Profile{Email: "admin@shop.com", Name: "Admin User", Role: entity.RoleAdmin},
		Token:         "token-123",
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Authenticated)
	assert.Equal(t, entity.RoleAdmin, loaded.Role)
	assert.Equal(t, "token-123", loaded.Token)
	require.NotNil(t, loaded.Profile)
	assert.Equal(t, "admin@shop.com", loaded.Profile.Email)
}

func TestSessionRepository_SaveUnauthenticatedClears(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{
		Authenticated: true,
		Role:          entity.RoleClient,
		Profile:       &entity.Profile{Email: "client@shop.com", Role: entity.RoleClient},
		Token:         "token-456",
	}))
	require.NoError(t, repo.Save(ctx, entity.GuestSession()))

	_, err := store.Get(ctx, "authToken")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
}

func TestSessionRepository_CorruptProfileStillAuthenticates(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "authToken", []byte("token-789")))
	require.NoError(t, store.Put(ctx, "userRole", []byte("client")))
	require.NoError(t, store.Put(ctx, "user", []byte("{not json")))

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "token-789", session.Token)
	assert.Nil(t, session.Profile)
}

func TestSessionRepository_InvalidRoleFallsBackToClient(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "authToken", []byte("token-000")))
	require.NoError(t, store.Put(ctx, "userRole", []byte("superuser")))

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, session.Role)
}

func TestSessionRepository_ClearRemovesAllFields(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{
		Authenticated: true,
		Role:          entity.RoleClient,
		Profile:       &entity.Profile{Email: "client@shop.com", Role: entity.RoleClient},
		Token:         "token-111",
	}))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{"authToken", "userRole", "user"} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, kv.ErrKeyNotFound, key)
	}
}
