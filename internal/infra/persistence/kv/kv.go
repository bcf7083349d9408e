// Package kv defines the flat string-keyed record store that all
// storefront state is mirrored into. It deliberately models the original
// browser storage API: whole serialized records under plain string keys,
// with no schema, index or cross-record transaction.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no record exists under the key.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is a flat key-value record store. Implementations must make each
// Put atomic per record; nothing spans multiple records.
type Store interface {
	// Get returns the record stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores the record under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key that starts with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
