package middleware

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/usecases"
	"dashmart.backend/pkg/logger"
)

const (
	// BasicPrefix is the prefix for basic credentials; the match is
	// case-sensitive by contract.
	BasicPrefix = "Basic "
	// ConsumerKeyKey is the context key for the validated consumer key
	ConsumerKeyKey = "consumerKey"
)

type credentials struct {
	ConsumerKey    string
	ConsumerSecret string
}

// extractCredentials pulls a presented credential pair out of the request.
// Header credentials win over query parameters since they are less exposed
// in logs and browser history. A malformed Basic header is treated as
// absent, not as an error.
func extractCredentials(r *http.Request) *credentials {
	authHeader := r.Header.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BasicPrefix) {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, BasicPrefix))
		if err == nil {
			if key, secret, ok := strings.Cut(string(decoded), ":"); ok {
				return &credentials{ConsumerKey: key, ConsumerSecret: secret}
			}
		}
	}

	query := r.URL.Query()
	if query.Has("consumer_key") && query.Has("consumer_secret") {
		return &credentials{
			ConsumerKey:    query.Get("consumer_key"),
			ConsumerSecret: query.Get("consumer_secret"),
		}
	}

	return nil
}

// permissionForMethod maps the HTTP verb to the permission the key must hold
func permissionForMethod(method string) entities.Permission {
	switch method {
	case http.MethodGet, http.MethodHead:
		return entities.PermissionRead
	case http.MethodDelete:
		return entities.PermissionDelete
	default:
		// POST, PUT, PATCH
		return entities.PermissionWrite
	}
}

// ApiKeyAuth authenticates integration requests with a consumer key/secret
// pair and gates them on the key's permission set. Invalid credentials are
// never broken down further: unknown key, revoked key and wrong secret all
// produce the same 401. Storage failures deny (fail closed), never allow.
func ApiKeyAuth(apiKeyUsecase *usecases.ApiKeyUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := extractCredentials(c.Request)
		if creds == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
			return
		}

		ok, err := apiKeyUsecase.Validate(c.Request.Context(), creds.ConsumerKey, creds.ConsumerSecret)
		if err != nil {
			logger.Error(c.Request.Context(), "api key validation unavailable", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		required := permissionForMethod(c.Request.Method)
		allowed, err := apiKeyUsecase.CheckPermission(c.Request.Context(), creds.ConsumerKey, required)
		if err != nil {
			logger.Error(c.Request.Context(), "api key permission check unavailable", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf("API key does not have %s permission", required),
			})
			return
		}

		c.Set(ConsumerKeyKey, creds.ConsumerKey)
		c.Next()
	}
}
