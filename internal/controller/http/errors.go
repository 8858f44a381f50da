package http

import (
	"errors"
	"net/http"

	"reelhub/internal/usecase"
	"reelhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError is the single place use-case errors become HTTP responses.
// Anything outside the sentinel taxonomy is logged and reported as a generic
// 500 so internals never reach the client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
	default:
		log.Error("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
