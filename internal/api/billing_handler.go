package api

import (
	"net/http"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billing service.BillingService
}

func NewBillingHandler(billing service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// --- DTOs ---

type invoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type createInvoiceRequest struct {
	ClientID string               `json:"clientId" binding:"required"`
	Date     string               `json:"date"`
	DueDate  string               `json:"dueDate"`
	Items    []invoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

type invoiceFromPlanRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	PlanID   string `json:"planId" binding:"required"`
}

type recordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required"`
	Note   string  `json:"note"`
}

// ListInvoices godoc
// @Summary List invoices, most recent first, with derived payment state
// @Produce json
// @Router /invoices [get]
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.billing.ListInvoices(c.Request.Context()))
}

// GetInvoice godoc
// @Summary Get one invoice with derived payment state
// @Produce json
// @Router /invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	inv, err := h.billing.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// CreateInvoice godoc
// @Summary Issue an invoice
// @Description The total is computed from the items; the invoice number is
// @Description assigned as INV-<year>-<NNN>.
// @Accept json
// @Produce json
// @Router /invoices [post]
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.InvoiceItemInput{Description: it.Description, Amount: it.Amount})
	}
	inv, err := h.billing.CreateInvoice(c.Request.Context(), service.CreateInvoiceInput{
		ClientID: req.ClientID,
		Date:     req.Date,
		DueDate:  req.DueDate,
		Items:    items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// CreateInvoiceFromPlan issues a one-line invoice billing a plan's
// discounted price.
func (h *BillingHandler) CreateInvoiceFromPlan(c *gin.Context) {
	var req invoiceFromPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	inv, err := h.billing.InvoiceFromPlan(c.Request.Context(), req.ClientID, req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// RecordPayment godoc
// @Summary Record a payment against an invoice
// @Description Re-derives the invoice status: paid once the payment total
// @Description reaches the invoice amount, pending otherwise.
// @Accept json
// @Produce json
// @Router /invoices/{id}/payments [post]
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	tx, err := h.billing.RecordPayment(c.Request.Context(), service.RecordPaymentInput{
		InvoiceID: c.Param("id"),
		Amount:    req.Amount,
		Method:    domain.PaymentMethod(req.Method),
		Note:      req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// ListTransactions godoc
// @Summary List payments, most recent first
// @Produce json
// @Router /transactions [get]
func (h *BillingHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.billing.ListTransactions(c.Request.Context()))
}

// PrintInvoice renders the invoice as a standalone printable HTML document.
func (h *BillingHandler) PrintInvoice(c *gin.Context) {
	doc, err := h.billing.PrintableInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}
