package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"ledger/config"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("some password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	password := "same password twice"

	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of one password differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}
