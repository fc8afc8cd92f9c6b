package models

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ConsumerKey string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	SecretHash  string    `gorm:"type:varchar(64);not null"` // SHA256 of secret, hex
	Description string    `gorm:"type:varchar(200);not null"`
	Permissions string    `gorm:"type:text;not null"` // JSON string
	Status      string    `gorm:"type:varchar(10);not null;default:'active'"`
	LastUsed    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Owner       User `gorm:"foreignKey:OwnerID"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
