package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduling service.SchedulingService
}

func NewScheduleHandler(scheduling service.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{scheduling: scheduling}
}

// --- DTOs ---

type scheduleRequest struct {
	CenterID  string `json:"centerId" binding:"required"`
	TrainerID string `json:"trainerId" binding:"required"`
	ClientID  string `json:"clientId" binding:"required"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Notes     string `json:"notes"`
}

// ListAppointments godoc
// @Summary List appointments sorted by start time
// @Produce json
// @Router /appointments [get]
func (h *ScheduleHandler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduling.ListAppointments(c.Request.Context()))
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Description Rejects bookings whose trainer already has an appointment at
// @Description exactly the same start time.
// @Accept json
// @Produce json
// @Router /appointments [post]
func (h *ScheduleHandler) CreateAppointment(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	appt, err := h.scheduling.Schedule(c.Request.Context(), service.ScheduleInput{
		CenterID:  req.CenterID,
		TrainerID: req.TrainerID,
		ClientID:  req.ClientID,
		Start:     req.Start,
		End:       req.End,
		Type:      domain.AppointmentType(req.Type),
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// DeleteAppointment godoc
// @Summary Cancel an appointment
// @Router /appointments/{id} [delete]
func (h *ScheduleHandler) DeleteAppointment(c *gin.Context) {
	if err := h.scheduling.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckConflict reports whether a trainer already has a booking at the given
// start time, so forms can warn before submitting.
func (h *ScheduleHandler) CheckConflict(c *gin.Context) {
	trainerID := c.Query("trainerId")
	start := c.Query("start")
	if trainerID == "" || start == "" {
		abortWithError(c, http.StatusBadRequest, "trainerId and start are required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"conflict": h.scheduling.HasConflict(c.Request.Context(), trainerID, start),
	})
}
