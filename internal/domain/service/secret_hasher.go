package service

// SecretHasher derives digests for high-entropy secrets such as API keys.
// Unlike password hashing this uses a fast-but-tunable KDF: the input is
// already random, so the digest only needs to prove possession of the
// original secret.
type SecretHasher interface {
	// HashSecret derives a digest with a fresh random salt.
	// The stored form is hex(digest) + "." + hex(salt).
	HashSecret(secret string) (string, error)

	// HashSecretWithSalt derives a digest deterministically for a given salt.
	HashSecretWithSalt(secret, salt string) (string, error)

	// VerifySecret splits a stored value on the separator, re-derives with the
	// embedded salt and compares digests in constant time.
	VerifySecret(stored, candidate string) bool
}
