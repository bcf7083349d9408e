package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository persists one cart line list per identity. Every
// operation names its identity explicitly; the repository never guesses
// a scoping key on its own.
type CartRepository interface {
	// Load reads the line list for an identity. Absent or unreadable
	// records yield an empty slice, never an error.
	Load(ctx context.Context, identity entity.Identity) ([]entity.CartLine, error)

	// Save mirrors the full line list under the identity's key.
	Save(ctx context.Context, identity entity.Identity, lines []entity.CartLine) error
}

// CartBackupRepository holds the prior cart contents during a "buy now"
// flow. It lives in the session-scoped store: backups do not survive a
// process restart, mirroring the original checkout-lifetime storage.
type CartBackupRepository interface {
	// Load reads the backup for an identity. The boolean reports whether
	// a backup exists at all; an existing backup may legitimately be an
	// empty line list.
	Load(ctx context.Context, identity entity.Identity) ([]entity.CartLine, bool, error)

	// Save stores the backup under the identity's key.
	Save(ctx context.Context, identity entity.Identity, lines []entity.CartLine) error

	// Clear drops the backup for an identity, if any.
	Clear(ctx context.Context, identity entity.Identity) error
}
