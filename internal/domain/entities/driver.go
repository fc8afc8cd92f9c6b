package entities

import (
	"time"

	"github.com/google/uuid"
)

// Driver is a delivery driver registered on the marketplace
type Driver struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicleType"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateDriverInput struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	VehicleType string `json:"vehicleType" binding:"required"`
}
