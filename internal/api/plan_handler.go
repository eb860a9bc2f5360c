package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	plans service.PlanService
}

func NewPlanHandler(plans service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

type createPlanRequest struct {
	Title         string  `json:"title" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Yoga          string  `json:"yoga"`
	Diet          string  `json:"diet"`
	StartDate     string  `json:"startDate"`
	DurationWeeks int     `json:"durationWeeks" binding:"required,gt=0"`
	Price         float64 `json:"price" binding:"gte=0"`
	Discount      float64 `json:"discount" binding:"gte=0,lte=100"`
}

// ListPlans godoc
// @Summary List plan templates with effective prices and client coverage
// @Produce json
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans.Overview(c.Request.Context()))
}

// CreatePlan godoc
// @Summary Create a plan template
// @Accept json
// @Produce json
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.plans.Create(c.Request.Context(), service.CreatePlanInput{
		Title:         req.Title,
		Type:          domain.PlanType(req.Type),
		Yoga:          req.Yoga,
		Diet:          req.Diet,
		StartDate:     req.StartDate,
		DurationWeeks: req.DurationWeeks,
		Price:         req.Price,
		Discount:      req.Discount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// DeletePlan godoc
// @Summary Delete a plan template
// @Description Clients referencing the plan keep the id in their plan list.
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.plans.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
