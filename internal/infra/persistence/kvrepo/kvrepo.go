// Package kvrepo implements the domain repositories on top of the flat
// kv record store, using the storefront's fixed key layout:
//
//	authToken, userRole, user            current session (three fields)
//	userDatabase                         full credential registry
//	products                             full product list
//	cartItems_<identity>                 cart lines per identity
//	orderHistory_<identity>              order history per identity
//	originalCartBackup_<identity>        buy-now backup (session store)
//
// Records are JSON. A malformed or unreadable record is logged and
// treated as absent, so storage corruption degrades to defaults instead
// of failing an operation.
package kvrepo

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/kv"
)

const (
	keyAuthToken    = "authToken"
	keyUserRole     = "userRole"
	keyUser         = "user"
	keyUserDatabase = "userDatabase"
	keyProducts     = "products"

	cartKeyPrefix   = "cartItems_"
	orderKeyPrefix  = "orderHistory_"
	backupKeyPrefix = "originalCartBackup_"
)

func cartKey(identity entity.Identity) string {
	return cartKeyPrefix + identity.String()
}

func orderKey(identity entity.Identity) string {
	return orderKeyPrefix + identity.String()
}

func backupKey(identity entity.Identity) string {
	return backupKeyPrefix + identity.String()
}

// loadRecord reads and decodes one JSON record. The boolean reports
// whether a usable record existed; corrupt records count as absent.
func loadRecord[T any](ctx context.Context, store kv.Store, logger *slog.Logger, key string) (T, bool, error) {
	var value T

	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return value, false, nil
		}

		return value, false, domainerrors.NewStorageExecuteError(err, "read record "+key)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("Discarding malformed record", slog.String("key", key), slog.Any("error", err))

		var zero T

		return zero, false, nil
	}

	return value, true, nil
}

// saveRecord encodes and writes one JSON record.
func saveRecord(ctx context.Context, store kv.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode record %q", key)
	}

	if err := store.Put(ctx, key, raw); err != nil {
		return domainerrors.NewStorageExecuteError(err, "write record "+key)
	}

	return nil
}
