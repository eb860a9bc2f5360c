package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard godoc
// @Summary Dashboard headline numbers and trainer workload
// @Produce json
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.Dashboard(c.Request.Context()))
}

// Revenue godoc
// @Summary Revenue totals plus by-month and by-method groupings
// @Produce json
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.Revenue(c.Request.Context()))
}

// ExportClients serves the client registry as a CSV download.
func (h *ReportHandler) ExportClients(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="clients_export.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", h.reports.ClientRegistryCSV(c.Request.Context()))
}

// ExportAppointments serves the schedule log as a CSV download.
func (h *ReportHandler) ExportAppointments(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="appointments_export.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", h.reports.AppointmentsCSV(c.Request.Context()))
}
