package repositories

import (
	"context"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	List(ctx context.Context, search string, offset, limit int) ([]*entities.Product, int64, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
