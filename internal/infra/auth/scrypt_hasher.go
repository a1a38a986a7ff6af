package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"

	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"
)

// scrypt parameters for API-key secrets. The inputs are high-entropy random
// values, so a moderate work factor is enough; keyLen matches the 64-byte
// digest the stored format expects.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64

	saltBytes = 8
)

// scryptHasher implements SecretHasher with the scrypt KDF.
type scryptHasher struct{}

// NewScryptHasher is the constructor for scryptHasher.
func NewScryptHasher() service.SecretHasher {
	return &scryptHasher{}
}

// HashSecret derives a digest with a fresh random salt.
func (h *scryptHasher) HashSecret(secret string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", domainerrors.ErrHashingFailed.WrapMessage("failed to generate salt")
	}

	return h.HashSecretWithSalt(secret, hex.EncodeToString(salt))
}

// HashSecretWithSalt derives the stored form hex(digest) + "." + hex(salt)
// deterministically for a given hex-encoded salt.
func (h *scryptHasher) HashSecretWithSalt(secret, salt string) (string, error) {
	digest, err := scrypt.Key([]byte(secret), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", domainerrors.ErrHashingFailed.WrapMessage(err.Error())
	}

	return hex.EncodeToString(digest) + "." + salt, nil
}

// VerifySecret re-derives the digest with the salt embedded in the stored
// value and compares in constant time. Malformed stored values verify false.
func (h *scryptHasher) VerifySecret(stored, candidate string) bool {
	digestPart, saltPart, found := strings.Cut(stored, ".")
	if !found || digestPart == "" || saltPart == "" {
		return false
	}

	rederived, err := h.HashSecretWithSalt(candidate, saltPart)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(rederived), []byte(stored)) == 1
}
