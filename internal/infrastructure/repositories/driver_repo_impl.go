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

// DriverRepository implements driver data operations
type DriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// Create creates a new driver
func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	m := &models.Driver{
		ID:          driver.ID,
		Name:        driver.Name,
		Phone:       driver.Phone,
		VehicleType: driver.VehicleType,
		IsAvailable: driver.IsAvailable,
		CreatedAt:   driver.CreatedAt,
		UpdatedAt:   driver.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// GetByID gets a driver by ID
func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	var m models.Driver
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return r.toEntity(&m), nil
}

// List lists drivers, optionally only those marked available
func (r *DriverRepository) List(ctx context.Context, onlyAvailable bool) ([]*entities.Driver, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if onlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	var driverModels []models.Driver
	if err := query.Find(&driverModels).Error; err != nil {
		return nil, storageErr(err)
	}

	drivers := make([]*entities.Driver, 0, len(driverModels))
	for _, m := range driverModels {
		model := m
		drivers = append(drivers, r.toEntity(&model))
	}
	return drivers, nil
}

// SetAvailability toggles a driver's availability flag
func (r *DriverRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := r.db.WithContext(ctx).Model(&models.Driver{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_available": available,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) toEntity(m *models.Driver) *entities.Driver {
	return &entities.Driver{
		ID:          m.ID,
		Name:        m.Name,
		Phone:       m.Phone,
		VehicleType: m.VehicleType,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
