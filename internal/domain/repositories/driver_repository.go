package repositories

import (
	"context"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
	List(ctx context.Context, onlyAvailable bool) ([]*entities.Driver, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}
