package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
)

func newStoredProduct(vendorID uuid.UUID, name string, createdAt time.Time) *entities.Product {
	return &entities.Product{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        name,
		Description: "desc",
		PriceCents:  1999,
		Stock:       10,
		IsActive:    true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestProductRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := newStoredProduct(uuid.New(), "Oat Milk", time.Now())
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Oat Milk", got.Name)
	require.Equal(t, int64(1999), got.PriceCents)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductRepository_ListSearchAndPagination(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		p := newStoredProduct(vendorID, fmt.Sprintf("Coffee %d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, p))
	}
	require.NoError(t, repo.Create(ctx, newStoredProduct(vendorID, "Tea", base.Add(time.Hour))))

	all, total, err := repo.List(ctx, "", 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(6), total)
	require.Len(t, all, 6)
	// Newest first
	require.Equal(t, "Tea", all[0].Name)

	coffee, total, err := repo.List(ctx, "Coffee", 0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, coffee, 2)
	require.Equal(t, "Coffee 4", coffee[0].Name)

	page2, _, err := repo.List(ctx, "Coffee", 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.Equal(t, "Coffee 2", page2[0].Name)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	createProductTable(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := newStoredProduct(uuid.New(), "Oat Milk", time.Now())
	require.NoError(t, repo.Create(ctx, p))

	p.Name = "Oat Milk 1L"
	p.Stock = 3
	p.IsActive = false
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Oat Milk 1L", got.Name)
	require.Equal(t, 3, got.Stock)
	require.False(t, got.IsActive)

	err = repo.Update(ctx, newStoredProduct(uuid.New(), "ghost", time.Now()))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, p.ID), domainerrors.ErrNotFound)
}
