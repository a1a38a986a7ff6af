package auth

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScryptHasher_HashSecret(t *testing.T) {
	hasher := NewScryptHasher()

	stored, err := hasher.HashSecret("super-secret-value")
	require.NoError(t, err)

	parts := strings.Split(stored, ".")
	require.Len(t, parts, 2)

	// 64-byte digest and 8-byte salt, both hex-encoded.
	digest, err := hex.DecodeString(parts[0])
	assert.NoError(t, err)
	assert.Len(t, digest, 64)

	salt, err := hex.DecodeString(parts[1])
	assert.NoError(t, err)
	assert.Len(t, salt, 8)
}

func TestScryptHasher_HashSecretWithSalt_Deterministic(t *testing.T) {
	hasher := NewScryptHasher()

	first, err := hasher.HashSecretWithSalt("secret", "00112233aabbccdd")
	require.NoError(t, err)
	second, err := hasher.HashSecretWithSalt("secret", "00112233aabbccdd")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// A different salt must change the digest.
	other, err := hasher.HashSecretWithSalt("secret", "ffeeddccbbaa9988")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestScryptHasher_VerifySecret(t *testing.T) {
	hasher := NewScryptHasher()

	stored, err := hasher.HashSecret("api-key-secret")
	require.NoError(t, err)

	assert.True(t, hasher.VerifySecret(stored, "api-key-secret"))
	assert.False(t, hasher.VerifySecret(stored, "wrong-secret"))
	assert.False(t, hasher.VerifySecret(stored, ""))
}

func TestScryptHasher_VerifySecret_MalformedStored(t *testing.T) {
	hasher := NewScryptHasher()

	malformed := []string{
		"",
		"no-separator",
		".leadingdot",
		"trailingdot.",
	}

	for _, stored := range malformed {
		assert.False(t, hasher.VerifySecret(stored, "anything"), "stored value: %q", stored)
	}
}
