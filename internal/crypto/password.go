package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Stored credential format: hex(derivedKey) + "." + hex(salt).
const hashSeparator = "."

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// scrypt tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target without touching the derivation code.
	scryptN int
	scryptR int
	scryptP int
	keyLen  int
	saltLen int
}

// NewPasswordHasher constructs a [PasswordHasher] with the interactive-login
// scrypt parameters:
//   - CPU/memory cost: N=16384, r=8, p=1
//   - salt length:     16 bytes
//   - key length:      64 bytes (512 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		scryptN: 1 << 14, // 16384
		scryptR: 8,
		scryptP: 1,
		keyLen:  64,
		saltLen: 16,
	}
}

// Hash implements [PasswordHasher]. It reads a fresh salt from the OS
// CSPRNG, derives the key with scrypt, and encodes both halves as
// "hex(derivedKey).hex(salt)". Returns an error only if the random read or
// the derivation itself fails.
func (h *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	derived, err := scrypt.Key([]byte(password), salt, h.scryptN, h.scryptR, h.scryptP, h.keyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}

	return hex.EncodeToString(derived) + hashSeparator + hex.EncodeToString(salt), nil
}

// Verify implements [PasswordHasher]. It splits the stored value into
// derived key and salt, re-derives a key from the candidate password with
// identical parameters, and compares the two with
// [subtle.ConstantTimeCompare] so the comparison never leaks where the
// first mismatching byte sits. Any decoding failure or length mismatch is
// treated as a non-match.
func (h *passwordHasher) Verify(password, stored string) bool {
	storedKey, salt, ok := h.decode(stored)
	if !ok {
		return false
	}

	derived, err := scrypt.Key([]byte(password), salt, h.scryptN, h.scryptR, h.scryptP, h.keyLen)
	if err != nil {
		return false
	}

	// ConstantTimeCompare returns 0 for buffers of unequal length, which
	// decode already rules out; both checks keep the contract explicit.
	if len(derived) != len(storedKey) {
		return false
	}

	return subtle.ConstantTimeCompare(derived, storedKey) == 1
}

// decode splits a stored credential into its derived-key and salt halves.
// The reported ok is false when the separator is missing, either half is
// not valid hex, or the derived key is not exactly keyLen bytes.
func (h *passwordHasher) decode(stored string) (key, salt []byte, ok bool) {
	keyHex, saltHex, found := strings.Cut(stored, hashSeparator)
	if !found {
		return nil, nil, false
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != h.keyLen {
		return nil, nil, false
	}

	salt, err = hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return nil, nil, false
	}

	return key, salt, true
}
