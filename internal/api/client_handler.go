package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clients service.ClientService
}

func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// --- DTOs ---

type registerClientRequest struct {
	Name     string `json:"name" binding:"required"`
	CenterID string `json:"centerId" binding:"required"`
	Age      int    `json:"age" binding:"required,gt=0"`
	Phone    string `json:"phone" binding:"required"`
}

type progressRequest struct {
	Date     string  `json:"date"`
	Note     string  `json:"note"`
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
}

// ListClients godoc
// @Summary List registered clients with resolved center and plan names
// @Produce json
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.clients.List(c.Request.Context()))
}

// GetClient godoc
// @Summary Get one client
// @Produce json
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	detail, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// RegisterClient godoc
// @Summary Register a new client
// @Accept json
// @Produce json
// @Router /clients [post]
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req registerClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clients.Register(c.Request.Context(), service.RegisterClientInput{
		Name:     req.Name,
		CenterID: req.CenterID,
		Age:      req.Age,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// AddProgress appends a progress log; the client's recorded weight follows
// the logged weight.
func (h *ClientHandler) AddProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.clients.LogProgress(c.Request.Context(), c.Param("id"), req.Date, req.Note, req.WeightKg); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
