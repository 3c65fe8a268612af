package http

import "errors"

// Sentinel errors used by the session middleware when reading the session
// cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the incoming request carries no
	// session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrMalformedSessionCookie is returned when the cookie value cannot be
	// split into an identifier and a signature.
	ErrMalformedSessionCookie = errors.New("malformed session cookie")

	// ErrBadCookieSignature is returned when the cookie's signature does not
	// match the identifier under the configured session secret.
	ErrBadCookieSignature = errors.New("session cookie signature mismatch")
)
