package kvrepo

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_MalformedRecordYieldsEmpty(t *testing.T) {
	store := memory.NewStore()
	repo := NewProductRepository(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "products", []byte("][ corrupt")))

	products, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewProductRepository(memory.NewStore(), discardLogger())
	ctx := context.Background()

	saved := []entity.Product{
		{ID: 1, Name: "Premium Office Chair", Price: 349.99},
		{ID: 2, Name: "Mechanical Keyboard", Price: 120.00, SoldOut: true},
	}
	require.NoError(t, repo.SaveAll(ctx, saved))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestCredentialRepository_MissingRecordYieldsEmpty(t *testing.T) {
	repo := NewCredentialRepository(memory.NewStore(), discardLogger())

	registry, err := repo.LoadRegistry(context.Background())
	require.NoError(t, err)
	assert.Empty(t, registry)
}

func TestCartRepository_ScopesByIdentity(t *testing.T) {
	repo := NewCartRepository(memory.NewStore(), discardLogger())
	ctx := context.Background()

	alice := entity.Identity("alice@shop.com")
	require.NoError(t, repo.Save(ctx, alice, []entity.CartLine{
		{Product: entity.Product{ID: 1, Name: "Premium Office Chair", Price: 349.99}, Quantity: 2},
	}))

	aliceLines, err := repo.Load(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceLines, 1)

	guestLines, err := repo.Load(ctx, entity.GuestIdentity)
	require.NoError(t, err)
	assert.Empty(t, guestLines)
}

func TestCartBackupRepository_DistinguishesAbsentFromEmpty(t *testing.T) {
	repo := NewCartBackupRepository(memory.NewStore(), discardLogger())
	ctx := context.Background()

	_, exists, err := repo.Load(ctx, entity.GuestIdentity)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Save(ctx, entity.GuestIdentity, nil))

	backup, exists, err := repo.Load(ctx, entity.GuestIdentity)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Empty(t, backup)

	require.NoError(t, repo.Clear(ctx, entity.GuestIdentity))

	_, exists, err = repo.Load(ctx, entity.GuestIdentity)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrderRepository_LoadAllTagsOwners(t *testing.T) {
	store := memory.NewStore()
	repo := NewOrderRepository(store, discardLogger())
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	require.NoError(t, repo.Save(ctx, "alice@shop.com", []entity.Order{
		{OrderID: "ORD-1-1", Date: now, Total: 20},
	}))
	require.NoError(t, repo.Save(ctx, entity.GuestIdentity, []entity.Order{
		{OrderID: "ORD-2-2", Date: now, Total: 45.50},
	}))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	owners := map[string]string{}
	for _, owned := range all {
		owners[owned.OrderID] = owned.Owner.String()
	}
	assert.Equal(t, "alice@shop.com", owners["ORD-1-1"])
	assert.Equal(t, "guest", owners["ORD-2-2"])
}

func TestOrderRepository_LoadAllSkipsCorruptHistories(t *testing.T) {
	store := memory.NewStore()
	repo := NewOrderRepository(store, discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "alice@shop.com", []entity.Order{{OrderID: "ORD-3-3"}}))
	require.NoError(t, store.Put(ctx, "orderHistory_broken", []byte("{oops")))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ORD-3-3", all[0].OrderID)
}
