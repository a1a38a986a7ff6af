package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a long-lived service credential tied to a project.
// Only the public prefix and the scrypt digest of the secret are stored;
// the composed "<prefix>.<secret>" value is handed to the caller exactly
// once at creation and is not recoverable afterwards.
type APIKey struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	Name       string
	Prefix     string // 10 hex characters, usable as a lookup hint.
	SecretHash string // hex(digest) + "." + hex(salt)
	CreatedAt  time.Time
}
