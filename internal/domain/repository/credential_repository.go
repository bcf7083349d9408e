package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CredentialRepository persists the full account registry as one durable
// record. The registry is small by design (a demo-scale user database),
// so it is always read and written whole.
type CredentialRepository interface {
	// LoadRegistry reads the registry. An absent or unreadable record
	// yields an empty slice, never an error; seeding the defaults is the
	// caller's concern.
	LoadRegistry(ctx context.Context) ([]entity.Credential, error)

	// SaveRegistry mirrors the entire registry.
	SaveRegistry(ctx context.Context, registry []entity.Credential) error
}
