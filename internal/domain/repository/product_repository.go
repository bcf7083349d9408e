package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository persists the global product list as one durable
// record, mirrored whole on every catalog mutation.
type ProductRepository interface {
	// LoadAll reads the product list. Absent or unreadable records yield
	// an empty slice; the catalog store decides whether to seed defaults.
	LoadAll(ctx context.Context) ([]entity.Product, error)

	// SaveAll mirrors the entire product list.
	SaveAll(ctx context.Context, products []entity.Product) error
}
