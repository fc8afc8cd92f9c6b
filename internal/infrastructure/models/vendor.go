package models

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessName string    `gorm:"type:varchar(200);not null"`
	ContactEmail string    `gorm:"type:varchar(255);not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	VerifiedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
