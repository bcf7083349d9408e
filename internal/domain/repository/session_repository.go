// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionRepository persists the single active session so that a fresh
// process start can reconstruct it. The session is mirrored as three
// independent durable fields (token, role, profile); a missing or
// unreadable record reconstructs as the default guest session.
type SessionRepository interface {
	// Load reads the last mirrored session. Absent or corrupted records
	// yield the guest session, never an error.
	Load(ctx context.Context) (*entity.Session, error)

	// Save mirrors the session's token, role and profile fields.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes all mirrored session fields (logout).
	Clear(ctx context.Context) error
}
