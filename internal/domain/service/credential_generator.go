package service

// CredentialGenerator produces cryptographically random credential material.
type CredentialGenerator interface {
	// Secret returns n random bytes encoded for transport (base64).
	Secret(n int) (string, error)

	// Prefix returns a fixed-length random identifier: 10 hex characters
	// from 5 random bytes. It is a lookup hint, not a security boundary.
	Prefix() (string, error)
}
