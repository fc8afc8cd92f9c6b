package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/domain/repositories"
)

// VendorUsecase handles vendor management
type VendorUsecase struct {
	vendorRepo repositories.VendorRepository
}

// NewVendorUsecase creates a new vendor usecase
func NewVendorUsecase(vendorRepo repositories.VendorRepository) *VendorUsecase {
	return &VendorUsecase{vendorRepo: vendorRepo}
}

// CreateVendor registers a vendor in pending state
func (u *VendorUsecase) CreateVendor(ctx context.Context, input *entities.CreateVendorInput) (*entities.Vendor, error) {
	now := time.Now()
	vendor := &entities.Vendor{
		ID:           uuid.New(),
		BusinessName: input.BusinessName,
		ContactEmail: input.ContactEmail,
		Status:       entities.VendorStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor gets a vendor by id
func (u *VendorUsecase) GetVendor(ctx context.Context, id uuid.UUID) (*entities.Vendor, error) {
	return u.vendorRepo.GetByID(ctx, id)
}

// ListVendors lists all vendors
func (u *VendorUsecase) ListVendors(ctx context.Context) ([]*entities.Vendor, error) {
	return u.vendorRepo.List(ctx)
}

// SetVendorStatus moves a vendor through its review states
func (u *VendorUsecase) SetVendorStatus(ctx context.Context, id uuid.UUID, status entities.VendorStatus) error {
	return u.vendorRepo.UpdateStatus(ctx, id, status)
}
