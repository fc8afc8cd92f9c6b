package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VendorStatus is the review state of a vendor
type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "PENDING"
	VendorStatusApproved  VendorStatus = "APPROVED"
	VendorStatusSuspended VendorStatus = "SUSPENDED"
)

// Vendor is a marketplace seller
type Vendor struct {
	ID           uuid.UUID    `json:"id"`
	BusinessName string       `json:"businessName"`
	ContactEmail string       `json:"contactEmail"`
	Status       VendorStatus `json:"status"`
	VerifiedAt   null.Time    `json:"verifiedAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type CreateVendorInput struct {
	BusinessName string `json:"businessName" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
}
