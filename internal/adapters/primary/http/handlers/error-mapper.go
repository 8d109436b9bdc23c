package handlers

import (
	"errors"
	"net/http"

	"housing-price-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Service unavailable errors
	case errors.Is(err, domain.ErrModelNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	// Unauthorized errors
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrPredictionFailed),
		errors.Is(err, domain.ErrFeatureCoercion),
		errors.Is(err, domain.ErrInvalidFeatureValue),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
