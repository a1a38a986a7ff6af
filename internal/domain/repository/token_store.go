package repository

import "context"

// RefreshTokenStore tracks which refresh tokens are currently valid.
// It is an allowlist: a token is usable only while present. Keys are the raw
// token values; expiry is enforced by the token's embedded claim, not by the
// store, so entries carry no TTL and delete-absent is not an error.
type RefreshTokenStore interface {
	// Store records a refresh token as issued.
	Store(ctx context.Context, token string) error

	// Contains reports whether a refresh token is currently valid.
	Contains(ctx context.Context, token string) (bool, error)

	// Delete revokes a refresh token. Deleting an absent token succeeds.
	Delete(ctx context.Context, token string) error
}
