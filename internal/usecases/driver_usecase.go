package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/domain/repositories"
)

// DriverUsecase handles delivery driver management
type DriverUsecase struct {
	driverRepo repositories.DriverRepository
}

// NewDriverUsecase creates a new driver usecase
func NewDriverUsecase(driverRepo repositories.DriverRepository) *DriverUsecase {
	return &DriverUsecase{driverRepo: driverRepo}
}

// CreateDriver registers a driver, available by default
func (u *DriverUsecase) CreateDriver(ctx context.Context, input *entities.CreateDriverInput) (*entities.Driver, error) {
	now := time.Now()
	driver := &entities.Driver{
		ID:          uuid.New(),
		Name:        input.Name,
		Phone:       input.Phone,
		VehicleType: input.VehicleType,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// GetDriver gets a driver by id
func (u *DriverUsecase) GetDriver(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	return u.driverRepo.GetByID(ctx, id)
}

// ListDrivers lists drivers, optionally only available ones
func (u *DriverUsecase) ListDrivers(ctx context.Context, onlyAvailable bool) ([]*entities.Driver, error) {
	return u.driverRepo.List(ctx, onlyAvailable)
}

// SetAvailability toggles the availability flag
func (u *DriverUsecase) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return u.driverRepo.SetAvailability(ctx, id, available)
}
