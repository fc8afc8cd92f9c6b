package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		Email:        "admin@dashmart.io",
		Name:         "Admin",
		PasswordHash: "bcrypt-hash",
		Role:         entities.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "admin@dashmart.io", byID.Email)
	require.Equal(t, entities.RoleAdmin, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "admin@dashmart.io")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "bcrypt-hash", byEmail.PasswordHash)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@dashmart.io")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
