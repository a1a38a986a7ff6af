package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"

	"ledger/internal/domain/service"
)

const (
	// DefaultSecretBytes is the size of a generated API-key secret.
	DefaultSecretBytes = 32

	prefixBytes = 5
)

// credentialGenerator implements CredentialGenerator with crypto/rand.
type credentialGenerator struct{}

// NewCredentialGenerator is the constructor for credentialGenerator.
func NewCredentialGenerator() service.CredentialGenerator {
	return &credentialGenerator{}
}

// Secret returns n cryptographically random bytes, base64-encoded.
func (g *credentialGenerator) Secret(n int) (string, error) {
	if n <= 0 {
		n = DefaultSecretBytes
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for secret")
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// Prefix returns 5 random bytes hex-encoded: always exactly 10 hex characters.
func (g *credentialGenerator) Prefix() (string, error) {
	buf := make([]byte, prefixBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for prefix")
	}

	return hex.EncodeToString(buf), nil
}
