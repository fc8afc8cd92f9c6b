package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Permission is a scope tag granted to an API key.
type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionDelete Permission = "delete"
)

// ParsePermission validates a permission tag.
func ParsePermission(s string) (Permission, bool) {
	switch Permission(s) {
	case PermissionRead, PermissionWrite, PermissionDelete:
		return Permission(s), true
	}
	return "", false
}

// ParsePermissions validates a list of tags. The empty list is legal; the
// resulting key authorizes nothing.
func ParsePermissions(tags []string) ([]Permission, bool) {
	perms := make([]Permission, 0, len(tags))
	for _, t := range tags {
		p, ok := ParsePermission(t)
		if !ok {
			return nil, false
		}
		perms = append(perms, p)
	}
	return perms, true
}

// ApiKeyStatus is the lifecycle state of a key.
type ApiKeyStatus string

const (
	ApiKeyStatusActive  ApiKeyStatus = "active"
	ApiKeyStatusRevoked ApiKeyStatus = "revoked"
)

const (
	// ConsumerKeyPrefix prefixes the public identifier
	ConsumerKeyPrefix = "ck_"
	// ConsumerSecretPrefix prefixes the secret, shown once at issuance
	ConsumerSecretPrefix = "cs_"
)

// ApiKey represents an issued API credential. The plaintext secret is never
// stored; only its SHA-256 digest survives issuance.
type ApiKey struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"ownerId"`
	ConsumerKey string       `json:"consumerKey"`
	SecretHash  string       `json:"-"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
	Status      ApiKeyStatus `json:"status"`
	LastUsed    null.Time    `json:"lastUsed,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// HasPermission reports whether the key grants the given scope.
// Revoked keys grant nothing regardless of their stored set.
func (k *ApiKey) HasPermission(p Permission) bool {
	if k.Status != ApiKeyStatusActive {
		return false
	}
	for _, got := range k.Permissions {
		if got == p {
			return true
		}
	}
	return false
}

type CreateApiKeyInput struct {
	Description string   `json:"description" binding:"required"`
	Permissions []string `json:"permissions"`
}

// CreateApiKeyResponse carries the plaintext secret. This is the only place
// it is ever observable; it cannot be retrieved again.
type CreateApiKeyResponse struct {
	ID             uuid.UUID    `json:"id"`
	Description    string       `json:"description"`
	ConsumerKey    string       `json:"consumerKey"`
	ConsumerSecret string       `json:"consumerSecret"`
	Permissions    []Permission `json:"permissions"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type UpdateApiKeyDescriptionInput struct {
	Description string `json:"description" binding:"required"`
}

type UpdateApiKeyPermissionsInput struct {
	Permissions []string `json:"permissions"`
}
