package models

import (
	"time"

	"github.com/google/uuid"
)

type Driver struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(30);not null"`
	VehicleType string    `gorm:"type:varchar(30);not null"`
	IsAvailable bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
