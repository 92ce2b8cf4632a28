// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
)

// respondError translates a service error into the JSON error envelope.
// Internal failure detail is echoed outside production only.
func respondError(c *gin.Context, cfg *config.Config, err error) {
	appErr := apperror.From(err)

	body := gin.H{"error": appErr.Message}
	if appErr.Kind == apperror.KindInternal && !cfg.IsProduction() && appErr.Err != nil {
		body["details"] = appErr.Err.Error()
	}

	c.JSON(appErr.Status(), body)
}

// respondValidation reports a request-binding failure
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation failed",
		"details": err.Error(),
	})
}
