package models

import "time"

// Session is the server-side record binding an opaque client-held
// identifier to an authenticated user. A session is created at login
// (or registration, which implies login) and destroyed at logout or
// once ExpiresAt has passed. There is no sliding renewal: the expiry
// is absolute from the moment of creation.
type Session struct {
	// SessionID is the opaque identifier handed to the client inside the
	// session cookie. It carries no meaning beyond being a lookup key.
	SessionID string `json:"-"`

	// UserID is the owner of the session.
	UserID int64 `json:"-"`

	// CreatedAt is the moment the session was established.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is the absolute expiry deadline. Lookups treat a session
	// whose deadline has passed as nonexistent.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session deadline has passed at the given
// moment.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
