package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"billing-manager-backend/internal/models"
	"billing-manager-backend/internal/services/invoicing"
	"billing-manager-backend/internal/services/payments"
)

type InvoiceHandler struct {
	invoicing *invoicing.InvoicingService
	ledger    *payments.LedgerService
}

func NewInvoiceHandler(invoicingService *invoicing.InvoicingService, ledger *payments.LedgerService) *InvoiceHandler {
	return &InvoiceHandler{invoicing: invoicingService, ledger: ledger}
}

// LineItemInput is one invoice row as submitted by the form. Amount is never
// accepted from the client; the calculator derives it.
type LineItemInput struct {
	ServiceID   *uint           `json:"serviceId"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// InvoiceInput defines the expected JSON body for creating or updating an invoice
type InvoiceInput struct {
	ClientID  uint             `json:"clientId" binding:"required"`
	Status    string           `json:"status" binding:"omitempty,oneof=draft sent paid overdue partially_paid"`
	IssueDate time.Time        `json:"issueDate" binding:"required"`
	DueDate   time.Time        `json:"dueDate" binding:"required"`
	LineItems []LineItemInput  `json:"lineItems" binding:"required,min=1"`
	Notes     string           `json:"notes"`
	TaxRate   *decimal.Decimal `json:"taxRate"`
}

// PaymentRequest is the body of POST /invoices/:id/payments
type PaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time      `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=cash check bank_transfer"`
	Notes         string          `json:"notes"`
}

func (in InvoiceInput) toServiceInput() invoicing.InvoiceInput {
	items := make([]models.LineItem, len(in.LineItems))
	for i, item := range in.LineItems {
		items[i] = models.LineItem{
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		}
	}
	return invoicing.InvoiceInput{
		ClientID:  in.ClientID,
		Status:    models.InvoiceStatus(in.Status),
		IssueDate: in.IssueDate,
		DueDate:   in.DueDate,
		LineItems: items,
		Notes:     in.Notes,
		TaxRate:   in.TaxRate,
	}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var statuses []string
	if status := c.Query("status"); status != "" && status != "all" {
		statuses = append(statuses, status)
	}

	invoices, err := h.invoicing.List(c.Query("search"), statuses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	invoice, err := h.invoicing.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	invoice, err := h.invoicing.Create(input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	invoice, err := h.invoicing.Update(id, input.toServiceInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.invoicing.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordPayment responds with the fully updated invoice so the caller
// immediately sees the new totals and status.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	input := payments.PaymentInput{
		Amount:        req.Amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}
	if req.PaymentDate != nil {
		input.PaymentDate = *req.PaymentDate
	}

	invoice, err := h.ledger.RecordPayment(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) GetPaymentHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	history, err := h.ledger.GetPaymentHistory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *InvoiceHandler) GetPaymentSummary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	invoice, err := h.invoicing.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments.Summarize(invoice))
}
