// Package store implements the persistence layer: PostgreSQL-backed
// repositories for user accounts and server-side sessions.
package store

import (
	"context"
	"time"

	"github.com/rizzmaster/rizznova/models"
)

// UserRepository provides atomic create/read access to user records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository provides the server-side session record lifecycle.
type SessionRepository interface {
	// CreateSession persists a new session row.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindSession returns the session with the given id if it has not
	// expired by now; an absent or expired row yields ErrSessionNotFound.
	FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error)

	// DeleteSession removes the session row. Deleting a session that does
	// not exist is not an error: logout is idempotent.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions removes every session whose deadline has passed
	// and returns the number of rows purged.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
