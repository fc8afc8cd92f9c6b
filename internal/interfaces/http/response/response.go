package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "dashmart.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response mapped from a domain error
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			// Repositories return the bare sentinel for missing rows and
			// owner mismatches; an absent resource is not a server fault.
			appErr = domainerrors.NotFound("resource not found")
		default:
			// Default to Internal Server Error if not an AppError
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Code, gin.H{
		"error": appErr.Message,
	})
}
