package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
	"dashmart.backend/internal/infrastructure/models"
)

// VendorRepository implements vendor data operations
type VendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create creates a new vendor
func (r *VendorRepository) Create(ctx context.Context, vendor *entities.Vendor) error {
	m := &models.Vendor{
		ID:           vendor.ID,
		BusinessName: vendor.BusinessName,
		ContactEmail: vendor.ContactEmail,
		Status:       string(vendor.Status),
		CreatedAt:    vendor.CreatedAt,
		UpdatedAt:    vendor.UpdatedAt,
	}
	if vendor.VerifiedAt.Valid {
		t := vendor.VerifiedAt.Time
		m.VerifiedAt = &t
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// GetByID gets a vendor by ID
func (r *VendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Vendor, error) {
	var m models.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return r.toEntity(&m), nil
}

// List lists all vendors
func (r *VendorRepository) List(ctx context.Context) ([]*entities.Vendor, error) {
	var vendorModels []models.Vendor
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vendorModels).Error; err != nil {
		return nil, storageErr(err)
	}

	vendors := make([]*entities.Vendor, 0, len(vendorModels))
	for _, m := range vendorModels {
		model := m
		vendors = append(vendors, r.toEntity(&model))
	}
	return vendors, nil
}

// UpdateStatus sets the vendor review status
func (r *VendorRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VendorStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.VendorStatusApproved {
		updates["verified_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).Model(&models.Vendor{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VendorRepository) toEntity(m *models.Vendor) *entities.Vendor {
	e := &entities.Vendor{
		ID:           m.ID,
		BusinessName: m.BusinessName,
		ContactEmail: m.ContactEmail,
		Status:       entities.VendorStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.VerifiedAt != nil {
		e.VerifiedAt.SetValid(*m.VerifiedAt)
	}
	return e
}
