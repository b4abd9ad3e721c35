package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
)

// respondError maps the closed apperr kinds to HTTP status codes. Anything
// outside the set is an unexpected failure and becomes a 500.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.Conflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperr.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "detail": err.Error()})
	}
}
