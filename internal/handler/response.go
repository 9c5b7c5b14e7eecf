package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitalyVL1/filmorate/internal/service"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// abortWithError maps error kinds to HTTP status codes: absent references to
// 404, uniqueness and validation failures to 400, everything else to 500.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrDuplicate), errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
