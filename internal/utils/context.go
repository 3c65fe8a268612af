// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, cookie signing,
// HTTP response writing, and opaque token generation.
package utils

import (
	"context"

	"github.com/rizzmaster/rizznova/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context. Set by the session middleware after a successful session
// lookup; retrieved type-safely via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// SessionIDCtxKey is the key used to store the opaque session identifier
// of the current request in the context. Downstream handlers (logout) use
// it to address the session record without re-reading the cookie.
var SessionIDCtxKey = contextKey("sessionID")

// UserCtxKey is the key used to store the full authenticated user record in
// the context. Set by the session middleware alongside UserIDCtxKey so that
// handlers can serve the user without a second repository round trip.
var UserCtxKey = contextKey("user")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserFromContext retrieves the authenticated user record from the
// context. The ok flag is false when no session middleware ran for this
// request or the stored value has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetSessionIDFromContext retrieves the opaque session identifier from the
// context. The ok flag is false when no session middleware ran for this
// request or the stored value has an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
