package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles everything the routes need.
type Services struct {
	Directory  service.DirectoryService
	Clients    service.ClientService
	Scheduling service.SchedulingService
	Plans      service.PlanService
	Billing    service.BillingService
	Reports    service.ReportService
	Resetter   Resetter
}

// SetupRoutes wires all handlers under /api/v1.
func SetupRoutes(router *gin.Engine, log *zap.Logger, svcs Services) {
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))

	directoryHandler := NewDirectoryHandler(svcs.Directory)
	clientHandler := NewClientHandler(svcs.Clients)
	scheduleHandler := NewScheduleHandler(svcs.Scheduling)
	planHandler := NewPlanHandler(svcs.Plans)
	billingHandler := NewBillingHandler(svcs.Billing)
	reportHandler := NewReportHandler(svcs.Reports)
	adminHandler := NewAdminHandler(svcs.Resetter)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/centers", directoryHandler.ListCenters)
		apiV1.GET("/trainers", directoryHandler.ListTrainers)

		clientGroup := apiV1.Group("/clients")
		{
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.POST("", clientHandler.RegisterClient)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.POST("/:id/progress", clientHandler.AddProgress)
		}

		apptGroup := apiV1.Group("/appointments")
		{
			apptGroup.GET("", scheduleHandler.ListAppointments)
			apptGroup.POST("", scheduleHandler.CreateAppointment)
			apptGroup.GET("/conflict", scheduleHandler.CheckConflict)
			apptGroup.DELETE("/:id", scheduleHandler.DeleteAppointment)
		}

		planGroup := apiV1.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
		}

		invoiceGroup := apiV1.Group("/invoices")
		{
			invoiceGroup.GET("", billingHandler.ListInvoices)
			invoiceGroup.POST("", billingHandler.CreateInvoice)
			invoiceGroup.POST("/from-plan", billingHandler.CreateInvoiceFromPlan)
			invoiceGroup.GET("/:id", billingHandler.GetInvoice)
			invoiceGroup.GET("/:id/print", billingHandler.PrintInvoice)
			invoiceGroup.POST("/:id/payments", billingHandler.RecordPayment)
		}

		apiV1.GET("/transactions", billingHandler.ListTransactions)

		reportGroup := apiV1.Group("/reports")
		{
			reportGroup.GET("/dashboard", reportHandler.Dashboard)
			reportGroup.GET("/revenue", reportHandler.Revenue)
			reportGroup.GET("/exports/clients", reportHandler.ExportClients)
			reportGroup.GET("/exports/appointments", reportHandler.ExportAppointments)
		}

		apiV1.POST("/admin/reset", adminHandler.ResetData)
	}
}
