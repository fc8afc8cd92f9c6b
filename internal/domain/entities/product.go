package entities

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item managed from the admin dashboard
type Product struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductInput struct {
	VendorID    uuid.UUID `json:"vendorId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents" binding:"required,gt=0"`
	Stock       int       `json:"stock"`
}

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"priceCents"`
	Stock       *int    `json:"stock"`
	IsActive    *bool   `json:"isActive"`
}
