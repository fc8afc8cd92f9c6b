package repositories

import (
	"context"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entities.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Vendor, error)
	List(ctx context.Context) ([]*entities.Vendor, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VendorStatus) error
}
