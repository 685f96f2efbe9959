package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors to status codes. Unknown errors are
// logged and reported with the generic message.
func respondError(c *gin.Context, err error, message string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, services.ErrMerchantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
	case errors.Is(err, services.ErrSpecialHourNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Special hour not found"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		}).Error(message)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
