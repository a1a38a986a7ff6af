package model

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyModel mirrors the 'api_keys' table. The secret itself is never stored,
// only its scrypt digest together with the salt.
type APIKeyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Prefix     string    `gorm:"type:varchar(10);unique;not null"`
	SecretHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}
