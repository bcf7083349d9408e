// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput is the credential pair supplied by the login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the draft supplied by the registration form.
// Registration always yields a client-role account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionOutput is the established session plus its access token.
type SessionOutput struct {
	Token   string          `json:"token"`
	Session *entity.Session `json:"session"`
}

// IdentityUsecase manages the credential registry and the single active
// session mirrored to durable storage.
type IdentityUsecase interface {
	// Seed makes sure the registry record exists, writing the two default
	// accounts (one admin, one client) on first run.
	Seed(ctx context.Context) error

	// Login matches the credentials against the registry and establishes
	// an authenticated session on success.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Register appends a new client credential and immediately
	// establishes a session for it (auto-login on registration).
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Logout clears the session back to the unauthenticated default.
	Logout(ctx context.Context) error

	// CurrentSession reconstructs the last mirrored session.
	CurrentSession(ctx context.Context) (*entity.Session, error)
}
