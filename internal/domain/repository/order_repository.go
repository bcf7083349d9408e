package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository persists one append-only order history per identity.
type OrderRepository interface {
	// Load reads the order history for an identity, newest first. Absent
	// or unreadable records yield an empty slice, never an error.
	Load(ctx context.Context, identity entity.Identity) ([]entity.Order, error)

	// Save mirrors the full history under the identity's key.
	Save(ctx context.Context, identity entity.Identity, orders []entity.Order) error

	// LoadAll scans every stored per-identity history and tags each order
	// with its owning identity. The result is unsorted; ordering policy
	// belongs to the caller. This is a full scan with no index,
	// acceptable only at demo scale.
	LoadAll(ctx context.Context) ([]entity.OwnedOrder, error)
}
