// Package crypto implements the credential hashing and verification
// primitives of the authentication flow. Passwords are never stored or
// logged in plaintext: only the salted scrypt derivation leaves this
// package, and verification is performed in constant time.
package crypto

// PasswordHasher turns a plaintext password into a storage-safe
// representation and later verifies a candidate password against it.
type PasswordHasher interface {
	// Hash derives a salted credential hash from the given password.
	// Two calls with the same password produce different outputs because
	// the salt is freshly random per call.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously stored hash.
	// A malformed stored value or a length mismatch yields false, never an
	// error: the caller cannot distinguish why verification failed.
	Verify(password, stored string) bool
}
