package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing for session cookie signing.
// Each Hasher owns its pool of reusable hash instances, so two Hashers with
// different keys can coexist in one process (e.g. production code and tests).
type Hasher struct {
	pool sync.Pool
}

// NewHasher constructs a Hasher whose pooled HMAC instances are all keyed
// with the provided secret. Pooling avoids repeated allocations of
// hash.Hash instances on hot request paths.
func NewHasher(key string) *Hasher {
	h := &Hasher{}
	h.pool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(key))
		},
	}

	return h
}

// Hash computes an HMAC-SHA256 signature over the given byte slice
// using a hasher pulled from the pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Hash(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// HashString computes an HMAC-SHA256 signature over the given string and
// returns the result as a hex-encoded string.
func (h *Hasher) HashString(data string) string {
	return hex.EncodeToString(h.Hash([]byte(data)))
}

// Equal reports whether the hex-encoded signature matches the HMAC of data
// under this Hasher's key. The comparison runs in constant time.
func (h *Hasher) Equal(data, signatureHex string) bool {
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}

	return hmac.Equal(h.Hash([]byte(data)), signature)
}
