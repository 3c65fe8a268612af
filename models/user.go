// Package models defines the domain entities shared between the storage,
// service, and transport layers of the application.
package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is the subject every session record points at.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the derived credential representation in the
	// form "hex(derivedKey).hex(salt)". This value MUST be a KDF output,
	// never plaintext, and is never serialized to JSON.
	PasswordHash string `json:"-"`

	// FirstName is the optional given name of the user.
	// It is non-sensitive and may be shown in UI.
	FirstName string `json:"firstName,omitempty"`

	// LastName is the optional family name of the user.
	LastName string `json:"lastName,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
