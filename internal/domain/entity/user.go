// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and own projects.
// PasswordHash is the bcrypt digest of the login password; it never leaves
// the persistence and identity layers.
type User struct {
	ID           uuid.UUID
	Email        string // Login identifier. Lookups are case-sensitive, matching stored form.
	PasswordHash string
	FirstName    string
	LastName     string
	Active       bool // Inactive users cannot log in.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
