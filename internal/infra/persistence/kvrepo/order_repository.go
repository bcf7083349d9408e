package kvrepo

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type orderRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewOrderRepository builds the per-identity order history records over
// the durable store.
func NewOrderRepository(store kv.Store, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{store: store, logger: logger}
}

// Load reads the order history under the identity's key.
func (repo *orderRepository) Load(ctx context.Context, identity entity.Identity) ([]entity.Order, error) {
	orders, _, err := loadRecord[[]entity.Order](ctx, repo.store, repo.logger, orderKey(identity))
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// Save mirrors the full history under the identity's key.
func (repo *orderRepository) Save(ctx context.Context, identity entity.Identity, orders []entity.Order) error {
	if orders == nil {
		orders = []entity.Order{}
	}

	return saveRecord(ctx, repo.store, orderKey(identity), orders)
}

// LoadAll scans every stored history record and tags each order with the
// identity parsed from its key. Corrupted histories are skipped, not
// fatal. Full scan, no index: demo scale only.
func (repo *orderRepository) LoadAll(ctx context.Context) ([]entity.OwnedOrder, error) {
	keys, err := repo.store.Keys(ctx, orderKeyPrefix)
	if err != nil {
		return nil, err
	}

	var all []entity.OwnedOrder
	for _, key := range keys {
		identity := entity.Identity(strings.TrimPrefix(key, orderKeyPrefix))

		orders, ok, err := loadRecord[[]entity.Order](ctx, repo.store, repo.logger, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		for _, order := range orders {
			all = append(all, entity.OwnedOrder{Order: order, Owner: identity})
		}
	}

	return all, nil
}
