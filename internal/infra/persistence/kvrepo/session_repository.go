package kvrepo

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/kv"
)

type sessionRepository struct {
	store  kv.Store
	logger *slog.Logger
}

// NewSessionRepository builds the session mirror over the durable store.
func NewSessionRepository(store kv.Store, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{store: store, logger: logger}
}

// Load reconstructs the last mirrored session from its three durable
// fields. A missing token means no session; a present token with a
// missing or corrupted profile still authenticates, profile nil.
func (repo *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	token, err := repo.store.Get(ctx, keyAuthToken)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return entity.GuestSession(), nil
		}

		return nil, errors.Wrap(err, "failed to read session token")
	}

	session := &entity.Session{
		Authenticated: true,
		Role:          entity.RoleClient,
		Token:         string(token),
	}

	if rawRole, err := repo.store.Get(ctx, keyUserRole); err == nil {
		if role := entity.Role(rawRole); role.IsValid() {
			session.Role = role
		}
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		return nil, errors.Wrap(err, "failed to read session role")
	}

	profile, ok, err := loadRecord[*entity.Profile](ctx, repo.store, repo.logger, keyUser)
	if err != nil {
		return nil, err
	}
	if ok {
		session.Profile = profile
	}

	return session, nil
}

// Save mirrors the session as three independent durable fields.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if !session.Authenticated {
		return repo.Clear(ctx)
	}

	if err := repo.store.Put(ctx, keyAuthToken, []byte(session.Token)); err != nil {
		return errors.Wrap(err, "failed to write session token")
	}
	if err := repo.store.Put(ctx, keyUserRole, []byte(session.Role.String())); err != nil {
		return errors.Wrap(err, "failed to write session role")
	}

	return saveRecord(ctx, repo.store, keyUser, session.Profile)
}

// Clear removes all three mirrored session fields.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	for _, key := range []string{keyAuthToken, keyUserRole, keyUser} {
		if err := repo.store.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to clear session field %q", key)
		}
	}

	return nil
}
