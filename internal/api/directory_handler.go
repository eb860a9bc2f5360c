package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the read-only center and trainer listings.
type DirectoryHandler struct {
	directory service.DirectoryService
}

func NewDirectoryHandler(directory service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) ListCenters(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Centers(c.Request.Context()))
}

func (h *DirectoryHandler) ListTrainers(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Trainers(c.Request.Context()))
}
