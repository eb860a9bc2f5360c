package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resetter is the one store command the admin surface needs.
type Resetter interface {
	Reset(ctx context.Context) error
}

type AdminHandler struct {
	resetter Resetter
}

func NewAdminHandler(resetter Resetter) *AdminHandler {
	return &AdminHandler{resetter: resetter}
}

// ResetData replaces all data with the seed dataset. The caller must pass
// confirm=true; resetting is irreversible and never done implicitly.
func (h *AdminHandler) ResetData(c *gin.Context) {
	if c.Query("confirm") != "true" {
		abortWithError(c, http.StatusBadRequest, "reset requires confirm=true")
		return
	}
	if err := h.resetter.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
