package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// sessionTokenLength is the number of random bytes in an opaque session
// identifier. 32 bytes (256 bits) keeps the identifier unguessable.
const sessionTokenLength = 32

// TokenGenerator produces opaque session identifiers from the OS CSPRNG.
type TokenGenerator struct{}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a fresh hex-encoded random identifier. The value carries
// no structure: it is only ever used as a session store lookup key.
func (g *TokenGenerator) Generate() (string, error) {
	buf := make([]byte, sessionTokenLength)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
