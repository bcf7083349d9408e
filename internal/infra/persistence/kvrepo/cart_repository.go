package kvrepo

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type cartRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewCartRepository builds the per-identity cart records over the
// durable store.
func NewCartRepository(store kv.Store, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{store: store, logger: logger}
}

// Load reads the line list under the identity's cart key.
func (repo *cartRepository) Load(ctx context.Context, identity entity.Identity) ([]entity.CartLine, error) {
	lines, _, err := loadRecord[[]entity.CartLine](ctx, repo.store, repo.logger, cartKey(identity))
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// Save mirrors the full line list under the identity's cart key.
func (repo *cartRepository) Save(ctx context.Context, identity entity.Identity, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return saveRecord(ctx, repo.store, cartKey(identity), lines)
}

type cartBackupRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewCartBackupRepository builds the buy-now backup records. The store
// handed in here is the session-scoped one: backups are meant to vanish
// with the process, exactly like the original checkout-lifetime storage.
func NewCartBackupRepository(store kv.Store, logger *slog.Logger) repository.CartBackupRepository {
	return &cartBackupRepository{store: store, logger: logger}
}

// Load reads the backup, reporting whether one exists; an existing
// backup may be an empty line list.
func (repo *cartBackupRepository) Load(ctx context.Context, identity entity.Identity) ([]entity.CartLine, bool, error) {
	return loadRecord[[]entity.CartLine](ctx, repo.store, repo.logger, backupKey(identity))
}

// Save snapshots the lines under the identity's backup key.
func (repo *cartBackupRepository) Save(ctx context.Context, identity entity.Identity, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return saveRecord(ctx, repo.store, backupKey(identity), lines)
}

// Clear drops the backup record, if any.
func (repo *cartBackupRepository) Clear(ctx context.Context, identity entity.Identity) error {
	return repo.store.Delete(ctx, backupKey(identity))
}
