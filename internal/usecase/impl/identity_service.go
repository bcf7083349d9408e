// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// defaultAccounts are written to an empty registry on first run: one
// administrator and one regular shopper.
var defaultAccounts = []struct {
	email    string
	password string
	name     string
	role     entity.Role
}{
	{email: "admin@shop.com", password: "admin", name: "Admin User", role: entity.RoleAdmin},
	{email: "client@shop.com", password: "client", name: "Client Shopper", role: entity.RoleClient},
}

// identityService implements the IdentityUsecase interface.
type identityService struct {
	credentialRepo repository.CredentialRepository
	sessionRepo    repository.SessionRepository
	hasher         service.PasswordHasher
	tokens         service.TokenService
	logger         *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	credentialRepo repository.CredentialRepository,
	sessionRepo repository.SessionRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		credentialRepo: credentialRepo,
		sessionRepo:    sessionRepo,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Seed writes the default accounts when the registry record is absent or
// unreadable. A populated registry is left untouched.
func (srv *identityService) Seed(ctx context.Context) error {
	registry, err := srv.credentialRepo.LoadRegistry(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load credential registry")
	}

	if len(registry) > 0 {
		return nil
	}

	srv.logger.Info("Seeding default accounts", "count", len(defaultAccounts))

	registry = make([]entity.Credential, 0, len(defaultAccounts))

	for _, account := range defaultAccounts {
		hash, err := srv.hasher.Hash(account.password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		registry = append(registry, entity.Credential{
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role,
			Name:         account.name,
		})
	}

	if err := srv.credentialRepo.SaveRegistry(ctx, registry); err != nil {
		return errors.Wrap(err, "failed to save seeded registry")
	}

	return nil
}

// Login matches the credentials against the registry and establishes an
// authenticated session. A wrong email and a wrong password are
// indistinguishable to the caller.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	registry, err := srv.credentialRepo.LoadRegistry(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential registry")
	}

	for i := range registry {
		credential := &registry[i]
		if credential.Email != input.Email {
			continue
		}

		if !srv.hasher.Check(input.Password, credential.PasswordHash) {
			break
		}

		srv.logger.Info("Login succeeded", "email", credential.Email, "role", credential.Role)

		return srv.establishSession(ctx, credential.Profile())
	}

	srv.logger.Warn("Login rejected", "email", input.Email)

	return nil, domainerrors.ErrInvalidCredentials
}

// Register appends a new client credential to the registry and
// immediately establishes a session for it.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	registry, err := srv.credentialRepo.LoadRegistry(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential registry")
	}

	for i := range registry {
		if registry[i].Email == input.Email {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	registry = append(registry, entity.Credential{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleClient,
		Name:         input.Name,
	})

	if err := srv.credentialRepo.SaveRegistry(ctx, registry); err != nil {
		return nil, errors.Wrap(err, "failed to save credential registry")
	}

	srv.logger.Info("Account registered", "email", input.Email)

	return srv.establishSession(ctx, entity.Profile{
		Email: input.Email,
		Name:  input.Name,
		Role:  entity.RoleClient,
	})
}

// Logout clears the mirrored session back to the guest default.
func (srv *identityService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.logger.Info("Session cleared")

	return nil
}

// CurrentSession reconstructs the last mirrored session.
func (srv *identityService) CurrentSession(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// establishSession issues a token for the profile and mirrors the
// resulting authenticated session.
func (srv *identityService) establishSession(ctx context.Context, profile entity.Profile) (*usecase.SessionOutput, error) {
	token, err := srv.tokens.Generate(profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	session := &entity.Session{
		Authenticated: true,
		Role:          profile.Role,
		Profile:       &profile,
		Token:         token,
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	return &usecase.SessionOutput{Token: token, Session: session}, nil
}
