package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_VerifyRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	stored, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, h.Verify("secret1", stored))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewPasswordHasher()

	stored, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, h.Verify("secret2", stored))
	assert.False(t, h.Verify("", stored))
}

func TestHash_SaltRandomness(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// Identical passwords must never share a stored representation.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestHash_Encoding(t *testing.T) {
	h := NewPasswordHasher()

	stored, err := h.Hash("secret1")
	require.NoError(t, err)

	keyHex, saltHex, found := strings.Cut(stored, hashSeparator)
	require.True(t, found, "stored hash must contain the separator")

	key, err := hex.DecodeString(keyHex)
	require.NoError(t, err)
	assert.Len(t, key, 64)

	salt, err := hex.DecodeString(saltHex)
	require.NoError(t, err)
	assert.Len(t, salt, 16)
}

func TestVerify_MalformedStored(t *testing.T) {
	h := NewPasswordHasher()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: "deadbeef"},
		{name: "non-hex key", stored: "zzzz.deadbeef"},
		{name: "non-hex salt", stored: "deadbeef.zzzz"},
		{name: "truncated key", stored: "deadbeef.deadbeef"},
		{name: "empty salt", stored: strings.Repeat("ab", 64) + "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("secret1", tt.stored))
		})
	}
}
