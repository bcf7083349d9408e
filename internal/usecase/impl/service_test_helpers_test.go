package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/kvrepo"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
)

// fixture wires the full service stack over in-memory stores, the same
// shape main assembles: a durable store and a session-scoped one.
type fixture struct {
	durable  kv.Store
	session  kv.Store
	identity usecase.IdentityUsecase
	catalog  usecase.CatalogUsecase
	cart     usecase.CartUsecase
	orders   usecase.OrderUsecase
	checkout usecase.CheckoutUsecase
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:     &config.AuthConfig{BcryptCost: 4},
		Checkout: &config.CheckoutConfig{ProcessingDelay: 0},
	}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return newFixtureWithStores(t, memory.NewStore(), memory.NewStore())
}

// newFixtureWithStores rebuilds the service stack over existing stores,
// simulating a process restart when reusing a durable store.
func newFixtureWithStores(t *testing.T, durable, session kv.Store) *fixture {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	sessionRepo := kvrepo.NewSessionRepository(durable, logger)
	credentialRepo := kvrepo.NewCredentialRepository(durable, logger)
	productRepo := kvrepo.NewProductRepository(durable, logger)
	cartRepo := kvrepo.NewCartRepository(durable, logger)
	orderRepo := kvrepo.NewOrderRepository(durable, logger)
	backupRepo := kvrepo.NewCartBackupRepository(session, logger)

	orders := NewOrderService(orderRepo, qrcode.NewQRCodeService(128, "L"), logger)

	return &fixture{
		durable:  durable,
		session:  session,
		identity: NewIdentityService(credentialRepo, sessionRepo, auth.NewBcryptHasher(cfg), tokens, logger),
		catalog:  NewCatalogService(productRepo, logger),
		cart:     NewCartService(cartRepo, productRepo, logger),
		orders:   orders,
		checkout: NewCheckoutService(cartRepo, backupRepo, productRepo, orders, cfg, logger),
	}
}

// asIdentity builds a request context authenticated as the given account.
func asIdentity(email string, role entity.Role) context.Context {
	return deliverycontext.WithPrincipal(context.Background(), deliverycontext.Principal{
		Identity:      entity.IdentityForEmail(email),
		Role:          role,
		Authenticated: true,
	})
}

// asGuest builds an anonymous request context.
func asGuest() context.Context {
	return context.Background()
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()

	require.NoError(t, f.identity.Seed(context.Background()))
	require.NoError(t, f.catalog.Seed(context.Background()))
}

var testShipping = &usecase.CheckoutInput{
	Name:    "Client Shopper",
	Email:   "client@shop.com",
	Address: "1 Main St",
	City:    "Springfield",
	Zip:     "12345",
}
