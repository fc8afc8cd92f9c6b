package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
	"dashmart.backend/internal/domain/repositories"
	"dashmart.backend/pkg/crypto"
	"dashmart.backend/pkg/logger"
)

// consumerHexLen is the number of hex characters after the ck_/cs_ prefix
const consumerHexLen = 32

var apiKeyNow = time.Now

// ApiKeyUsecase owns credential generation, validation, permission checks
// and the owner-facing key lifecycle. It is the single implementation every
// boundary handler goes through.
type ApiKeyUsecase struct {
	apiKeyRepo repositories.ApiKeyRepository
}

// NewApiKeyUsecase creates a new API key usecase
func NewApiKeyUsecase(apiKeyRepo repositories.ApiKeyRepository) *ApiKeyUsecase {
	return &ApiKeyUsecase{apiKeyRepo: apiKeyRepo}
}

// Issue generates a credential pair, persists the record with the hashed
// secret and returns the plaintext secret. This is the only point where the
// plaintext is observable; it cannot be retrieved again. Issuance is
// all-or-nothing: if persistence fails the generated pair is discarded.
func (u *ApiKeyUsecase) Issue(ctx context.Context, ownerID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	if err := u.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	perms, ok := entities.ParsePermissions(input.Permissions)
	if !ok {
		return nil, domainerrors.BadRequest("unknown permission tag")
	}

	consumerKey, consumerSecret, err := generateConsumerPair()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	now := apiKeyNow()
	entity := &entities.ApiKey{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ConsumerKey: consumerKey,
		SecretHash:  crypto.SHA256Hex(consumerSecret),
		Description: input.Description,
		Permissions: perms,
		Status:      entities.ApiKeyStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.apiKeyRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return &entities.CreateApiKeyResponse{
		ID:             entity.ID,
		Description:    entity.Description,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret, // Shown once
		Permissions:    perms,
		CreatedAt:      entity.CreatedAt,
	}, nil
}

// Validate checks a presented credential pair against the stored digest and
// touches last_used on success. It never reports why a credential failed:
// unknown key, revoked key and wrong secret all come back as a plain false.
// A non-nil error means the store itself failed; callers must deny.
func (u *ApiKeyUsecase) Validate(ctx context.Context, consumerKey, consumerSecret string) (bool, error) {
	key, err := u.apiKeyRepo.FindActiveByConsumerKey(ctx, consumerKey)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !crypto.DigestEqual(crypto.SHA256Hex(consumerSecret), key.SecretHash) {
		return false, nil
	}

	// Bookkeeping only; a failed touch must not undo a valid authentication.
	if err := u.apiKeyRepo.TouchLastUsed(ctx, key.ID, apiKeyNow()); err != nil {
		logger.Warn(ctx, "failed to update api key last_used", zap.Error(err), zap.String("consumer_key", consumerKey))
	}

	return true, nil
}

// CheckPermission reports whether an active key grants the required scope.
// Callers must only invoke this after Validate has accepted the same key.
// A revoked key, an unknown key or an empty permission set all return false.
func (u *ApiKeyUsecase) CheckPermission(ctx context.Context, consumerKey string, required entities.Permission) (bool, error) {
	perms, err := u.apiKeyRepo.FindPermissions(ctx, consumerKey)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	for _, p := range perms {
		if p == required {
			return true, nil
		}
	}
	return false, nil
}

// Revoke soft-deletes a key. Revoking an already-revoked key is a no-op
// success.
func (u *ApiKeyUsecase) Revoke(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := u.requireOwner(ctx, ownerID); err != nil {
		return err
	}
	return u.apiKeyRepo.UpdateStatus(ctx, id, ownerID, entities.ApiKeyStatusRevoked)
}

// Activate re-enables a revoked key. Idempotent.
func (u *ApiKeyUsecase) Activate(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := u.requireOwner(ctx, ownerID); err != nil {
		return err
	}
	return u.apiKeyRepo.UpdateStatus(ctx, id, ownerID, entities.ApiKeyStatusActive)
}

// UpdateDescription relabels a key without touching its credential material
func (u *ApiKeyUsecase) UpdateDescription(ctx context.Context, id, ownerID uuid.UUID, description string) error {
	if err := u.requireOwner(ctx, ownerID); err != nil {
		return err
	}
	return u.apiKeyRepo.UpdateDescription(ctx, id, ownerID, description)
}

// UpdatePermissions replaces the permission set of a key
func (u *ApiKeyUsecase) UpdatePermissions(ctx context.Context, id, ownerID uuid.UUID, tags []string) error {
	if err := u.requireOwner(ctx, ownerID); err != nil {
		return err
	}
	perms, ok := entities.ParsePermissions(tags)
	if !ok {
		return domainerrors.BadRequest("unknown permission tag")
	}
	return u.apiKeyRepo.UpdatePermissions(ctx, id, ownerID, perms)
}

// List returns the owner's keys. The secret digest never leaves the domain
// entity boundary (it is json-suppressed on the entity).
func (u *ApiKeyUsecase) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.ApiKey, error) {
	if err := u.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return u.apiKeyRepo.FindByOwner(ctx, ownerID)
}

// requireOwner rejects a missing owner identity outright. There is no
// fallback owner: an unidentified caller cannot operate on keys.
func (u *ApiKeyUsecase) requireOwner(ctx context.Context, ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		logger.Warn(ctx, "api key operation without a verified owner identity")
		return domainerrors.Unauthorized("owner identity required")
	}
	return nil
}

// generateConsumerPair produces an independent (consumer key, consumer
// secret) pair, each prefix + 32 hex chars of crypto/rand entropy.
func generateConsumerPair() (string, string, error) {
	keyRaw, err := crypto.GenerateRandomHex(consumerHexLen)
	if err != nil {
		return "", "", err
	}
	secretRaw, err := crypto.GenerateRandomHex(consumerHexLen)
	if err != nil {
		return "", "", err
	}
	return entities.ConsumerKeyPrefix + keyRaw, entities.ConsumerSecretPrefix + secretRaw, nil
}
