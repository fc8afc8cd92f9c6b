package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/interfaces/http/middleware"
	"dashmart.backend/internal/interfaces/http/response"
	"dashmart.backend/internal/usecases"
)

type ApiKeyHandler struct {
	apiKeyUsecase *usecases.ApiKeyUsecase
}

func NewApiKeyHandler(apiKeyUsecase *usecases.ApiKeyUsecase) *ApiKeyHandler {
	return &ApiKeyHandler{
		apiKeyUsecase: apiKeyUsecase,
	}
}

// CreateApiKey issues a new API key for the current user. The response is
// the only time the consumer secret is visible.
func (h *ApiKeyHandler) CreateApiKey(c *gin.Context) {
	var input entities.CreateApiKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resp, err := h.apiKeyUsecase.Issue(c.Request.Context(), ownerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListApiKeys lists the current user's API keys. Secret digests are never
// serialized.
func (h *ApiKeyHandler) ListApiKeys(c *gin.Context) {
	ownerID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	apiKeys, err := h.apiKeyUsecase.List(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, apiKeys)
}

// RevokeApiKey revokes an API key
func (h *ApiKeyHandler) RevokeApiKey(c *gin.Context) {
	h.setStatus(c, entities.ApiKeyStatusRevoked, "API key revoked")
}

// ActivateApiKey re-enables a revoked API key
func (h *ApiKeyHandler) ActivateApiKey(c *gin.Context) {
	h.setStatus(c, entities.ApiKeyStatusActive, "API key activated")
}

// UpdateDescription relabels an API key
func (h *ApiKeyHandler) UpdateDescription(c *gin.Context) {
	id, ownerID, ok := h.keyAndOwner(c)
	if !ok {
		return
	}

	var input entities.UpdateApiKeyDescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.apiKeyUsecase.UpdateDescription(c.Request.Context(), id, ownerID, input.Description); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key updated"})
}

// UpdatePermissions replaces an API key's permission set
func (h *ApiKeyHandler) UpdatePermissions(c *gin.Context) {
	id, ownerID, ok := h.keyAndOwner(c)
	if !ok {
		return
	}

	var input entities.UpdateApiKeyPermissionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.apiKeyUsecase.UpdatePermissions(c.Request.Context(), id, ownerID, input.Permissions); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key updated"})
}

func (h *ApiKeyHandler) setStatus(c *gin.Context, status entities.ApiKeyStatus, message string) {
	id, ownerID, ok := h.keyAndOwner(c)
	if !ok {
		return
	}

	var err error
	if status == entities.ApiKeyStatusRevoked {
		err = h.apiKeyUsecase.Revoke(c.Request.Context(), id, ownerID)
	} else {
		err = h.apiKeyUsecase.Activate(c.Request.Context(), id, ownerID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *ApiKeyHandler) keyAndOwner(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid API key ID"})
		return uuid.Nil, uuid.Nil, false
	}

	ownerID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}

	return id, ownerID, true
}
