package api

import (
	"errors"
	"net/http"

	"dhanbad/wellness-admin/internal/service"
	"dhanbad/wellness-admin/internal/store"

	"github.com/gin-gonic/gin"
)

// abortWithError sends a JSON error payload and stops the handler chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondError maps service/store error kinds onto HTTP statuses. Nothing is
// fatal to the process; the caller decides how to surface each kind.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrScheduleConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}
