package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
	"dashmart.backend/internal/infrastructure/models"
)

// ApiKeyRepository implements API key persistence on gorm
type ApiKeyRepository struct {
	db *gorm.DB
}

// NewApiKeyRepository creates a new API key repository
func NewApiKeyRepository(db *gorm.DB) *ApiKeyRepository {
	return &ApiKeyRepository{db: db}
}

// Create persists a new API key record
func (r *ApiKeyRepository) Create(ctx context.Context, apiKey *entities.ApiKey) error {
	permsJSON, err := json.Marshal(apiKey.Permissions)
	if err != nil {
		return err
	}

	m := &models.ApiKey{
		ID:          apiKey.ID,
		OwnerID:     apiKey.OwnerID,
		ConsumerKey: apiKey.ConsumerKey,
		SecretHash:  apiKey.SecretHash,
		Description: apiKey.Description,
		Permissions: string(permsJSON),
		Status:      string(apiKey.Status),
		CreatedAt:   apiKey.CreatedAt,
		UpdatedAt:   apiKey.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// FindActiveByConsumerKey looks up an active key by its public identifier.
// Not owner-scoped: validation checks any presented key globally.
func (r *ApiKeyRepository) FindActiveByConsumerKey(ctx context.Context, consumerKey string) (*entities.ApiKey, error) {
	var m models.ApiKey
	err := r.db.WithContext(ctx).
		Where("consumer_key = ? AND status = ?", consumerKey, string(entities.ApiKeyStatusActive)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return r.toEntity(&m)
}

// FindByID gets a key by id, scoped to its owner
func (r *ApiKeyRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entities.ApiKey, error) {
	var m models.ApiKey
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return r.toEntity(&m)
}

// FindByOwner lists all keys belonging to an owner
func (r *ApiKeyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ApiKey, error) {
	var keyModels []models.ApiKey
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&keyModels).Error
	if err != nil {
		return nil, storageErr(err)
	}

	keys := make([]*entities.ApiKey, 0, len(keyModels))
	for _, m := range keyModels {
		model := m
		e, err := r.toEntity(&model)
		if err != nil {
			return nil, err
		}
		keys = append(keys, e)
	}
	return keys, nil
}

// UpdateStatus sets the lifecycle status, scoped to the owner
func (r *ApiKeyRepository) UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status entities.ApiKeyStatus) error {
	return r.ownerScopedUpdate(ctx, id, ownerID, map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
}

// UpdateDescription replaces the description, scoped to the owner
func (r *ApiKeyRepository) UpdateDescription(ctx context.Context, id, ownerID uuid.UUID, description string) error {
	return r.ownerScopedUpdate(ctx, id, ownerID, map[string]interface{}{
		"description": description,
		"updated_at":  time.Now(),
	})
}

// UpdatePermissions replaces the permission set, scoped to the owner
func (r *ApiKeyRepository) UpdatePermissions(ctx context.Context, id, ownerID uuid.UUID, permissions []entities.Permission) error {
	permsJSON, err := json.Marshal(permissions)
	if err != nil {
		return err
	}
	return r.ownerScopedUpdate(ctx, id, ownerID, map[string]interface{}{
		"permissions": string(permsJSON),
		"updated_at":  time.Now(),
	})
}

// TouchLastUsed advances last_used to ts. The condition keeps the column
// monotonic under concurrent validations: a stale write is a no-op, not an
// error.
func (r *ApiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, ts time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.ApiKey{}).
		Where("id = ? AND (last_used IS NULL OR last_used < ?)", id, ts).
		Update("last_used", ts).Error
	if err != nil {
		return storageErr(err)
	}
	return nil
}

// FindPermissions returns the permission set of an active key
func (r *ApiKeyRepository) FindPermissions(ctx context.Context, consumerKey string) ([]entities.Permission, error) {
	key, err := r.FindActiveByConsumerKey(ctx, consumerKey)
	if err != nil {
		return nil, err
	}
	return key.Permissions, nil
}

func (r *ApiKeyRepository) ownerScopedUpdate(ctx context.Context, id, ownerID uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.ApiKey{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ApiKeyRepository) toEntity(m *models.ApiKey) (*entities.ApiKey, error) {
	var perms []entities.Permission
	if m.Permissions != "" {
		if err := json.Unmarshal([]byte(m.Permissions), &perms); err != nil {
			return nil, err
		}
	}

	e := &entities.ApiKey{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		ConsumerKey: m.ConsumerKey,
		SecretHash:  m.SecretHash,
		Description: m.Description,
		Permissions: perms,
		Status:      entities.ApiKeyStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.LastUsed != nil {
		e.LastUsed.SetValid(*m.LastUsed)
	}
	return e, nil
}
