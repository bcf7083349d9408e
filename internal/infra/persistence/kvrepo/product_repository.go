package kvrepo

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type productRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewProductRepository builds the product-list record over the durable store.
func NewProductRepository(store kv.Store, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{store: store, logger: logger}
}

// LoadAll reads the whole product list; absent or corrupted records come
// back empty so the catalog store can reseed defaults.
func (repo *productRepository) LoadAll(ctx context.Context) ([]entity.Product, error) {
	products, _, err := loadRecord[[]entity.Product](ctx, repo.store, repo.logger, keyProducts)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// SaveAll mirrors the entire product list as one record.
func (repo *productRepository) SaveAll(ctx context.Context, products []entity.Product) error {
	return saveRecord(ctx, repo.store, keyProducts, products)
}
