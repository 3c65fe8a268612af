// Package service implements the application's business logic: user
// registration, credential verification, and the session lifecycle.
package service

import (
	"context"

	"github.com/rizzmaster/rizznova/models"
)

// AuthService is the credential authenticator and session manager of the
// application.
type AuthService interface {
	// RegisterUser validates the registration payload, hashes the password,
	// and persists the new account. A duplicate email surfaces as
	// store.ErrEmailAlreadyExists.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the submitted credentials. An unknown email and a
	// wrong password both yield ErrWrongPassword so callers cannot tell
	// which one failed.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateSession establishes a new session for the given user with the
	// configured absolute lifetime.
	CreateSession(ctx context.Context, userID int64) (models.Session, error)

	// ResolveSession maps an opaque session identifier to its user.
	// An absent, expired, or orphaned session yields ErrSessionIsInvalid.
	ResolveSession(ctx context.Context, sessionID string) (models.User, error)

	// Logout destroys the session record. Logging out an already destroyed
	// session is not an error.
	Logout(ctx context.Context, sessionID string) error
}
