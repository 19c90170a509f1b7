package handlers

import (
	"errors"
	"net/http"

	"github.com/NabinS-D/TodoList/internal/service"

	"github.com/gin-gonic/gin"
)

// respondErr maps service errors to HTTP statuses. Anything unrecognized
// is a storage-layer failure and comes back as 500.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
