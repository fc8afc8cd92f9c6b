package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
)

// ApiKeyRepository is the persistence boundary for API key records.
//
// Lookup by consumer key is deliberately not owner-scoped: the validator
// checks any presented key globally, since the caller has not proven
// ownership yet. Every mutation is owner-scoped; a mismatch surfaces as
// ErrNotFound so cross-owner targets are indistinguishable from absent ones.
type ApiKeyRepository interface {
	Create(ctx context.Context, apiKey *entities.ApiKey) error
	FindActiveByConsumerKey(ctx context.Context, consumerKey string) (*entities.ApiKey, error)
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entities.ApiKey, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ApiKey, error)
	UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status entities.ApiKeyStatus) error
	UpdateDescription(ctx context.Context, id, ownerID uuid.UUID, description string) error
	UpdatePermissions(ctx context.Context, id, ownerID uuid.UUID, permissions []entities.Permission) error
	// TouchLastUsed advances last_used to ts; a write older than the stored
	// value is a no-op so the timestamp only moves forward.
	TouchLastUsed(ctx context.Context, id uuid.UUID, ts time.Time) error
	// FindPermissions returns the permission set of an active key.
	FindPermissions(ctx context.Context, consumerKey string) ([]entities.Permission, error)
}
