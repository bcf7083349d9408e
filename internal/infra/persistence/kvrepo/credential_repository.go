package kvrepo

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type credentialRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewCredentialRepository builds the registry record over the durable store.
func NewCredentialRepository(store kv.Store, logger *slog.Logger) repository.CredentialRepository {
	return &credentialRepository{store: store, logger: logger}
}

// LoadRegistry reads the full credential registry; absent or corrupted
// records come back empty so the identity store can reseed defaults.
func (repo *credentialRepository) LoadRegistry(ctx context.Context) ([]entity.Credential, error) {
	registry, _, err := loadRecord[[]entity.Credential](ctx, repo.store, repo.logger, keyUserDatabase)
	if err != nil {
		return nil, err
	}

	return registry, nil
}

// SaveRegistry mirrors the entire registry as one record.
func (repo *credentialRepository) SaveRegistry(ctx context.Context, registry []entity.Credential) error {
	return saveRecord(ctx, repo.store, keyUserDatabase, registry)
}
