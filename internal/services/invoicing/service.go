package invoicing

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"billing-manager-backend/internal/models"
	"billing-manager-backend/internal/repository"
)

// InvoicingService owns the invoice lifecycle: totals come from the
// calculator, numbers from the numbering policy, storage from the injected
// repository. Payments are handled by the payments package, never here.
type InvoicingService struct {
	invoiceRepo *repository.InvoiceRepository
	numbering   NumberingPolicy
	taxRate     decimal.Decimal
	logger      *zap.Logger
}

func NewInvoicingService(
	invoiceRepo *repository.InvoiceRepository,
	numbering NumberingPolicy,
	taxRate decimal.Decimal,
	logger *zap.Logger,
) *InvoicingService {
	return &InvoicingService{
		invoiceRepo: invoiceRepo,
		numbering:   numbering,
		taxRate:     taxRate,
		logger:      logger,
	}
}

// InvoiceInput carries the user-editable fields of an invoice. The same shape
// serves create and update; update is a full replace, not a patch.
type InvoiceInput struct {
	ClientID  uint
	Status    models.InvoiceStatus
	IssueDate time.Time
	DueDate   time.Time
	LineItems []models.LineItem
	Notes     string
	TaxRate   *decimal.Decimal
}

func (s *InvoicingService) List(query string, statuses []string) ([]models.Invoice, error) {
	return s.invoiceRepo.Search(query, statuses)
}

func (s *InvoicingService) Get(id uint) (*models.Invoice, error) {
	return s.invoiceRepo.GetByID(id)
}

func (s *InvoicingService) Create(input InvoiceInput) (*models.Invoice, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	items, totals := Calculate(input.LineItems, s.effectiveTaxRate(input.TaxRate))

	numbers, err := s.invoiceRepo.NumbersWithPrefix(s.numbering.Prefix)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		InvoiceNumber:    s.numbering.Next(numbers),
		ClientID:         input.ClientID,
		Status:           input.Status,
		IssueDate:        input.IssueDate,
		DueDate:          input.DueDate,
		LineItems:        datatypes.NewJSONSlice(items),
		Notes:            input.Notes,
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		Total:            totals.Total,
		Payments:         datatypes.NewJSONSlice([]models.Payment{}),
		TotalPaid:        decimal.Zero,
		RemainingBalance: totals.Total,
	}

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.Uint("id", invoice.ID),
		zap.String("number", invoice.InvoiceNumber),
		zap.String("total", invoice.Total.String()),
	)
	return invoice, nil
}

// Update replaces every user-editable field and recomputes the totals. The
// invoice number, payments and totalPaid survive the replace: the number is
// assigned once at creation and payments only change through the ledger.
func (s *InvoicingService) Update(id uint, input InvoiceInput) (*models.Invoice, error) {
	existing, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	items, totals := Calculate(input.LineItems, s.effectiveTaxRate(input.TaxRate))
	if totals.Total.LessThan(existing.TotalPaid) {
		return nil, &models.ValidationError{
			Field:   "lineItems",
			Message: "total cannot drop below the amount already paid",
		}
	}

	invoice := &models.Invoice{
		ID:               id,
		InvoiceNumber:    existing.InvoiceNumber,
		ClientID:         input.ClientID,
		Status:           input.Status,
		IssueDate:        input.IssueDate,
		DueDate:          input.DueDate,
		LineItems:        datatypes.NewJSONSlice(items),
		Notes:            input.Notes,
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		Total:            totals.Total,
		Payments:         existing.Payments,
		TotalPaid:        existing.TotalPaid,
		RemainingBalance: totals.Total.Sub(existing.TotalPaid),
	}

	// Re-derive the status when the recomputed balance contradicts it, so a
	// persisted invoice keeps remainingBalance == 0 <=> paid.
	switch {
	case invoice.RemainingBalance.IsZero() && invoice.TotalPaid.GreaterThan(decimal.Zero):
		invoice.Status = models.StatusPaid
	case invoice.TotalPaid.GreaterThan(decimal.Zero) && invoice.Status != models.StatusPaid:
		invoice.Status = models.StatusPartiallyPaid
	}

	if err := s.invoiceRepo.Update(id, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoicingService) Delete(id uint) error {
	return s.invoiceRepo.Delete(id)
}

func (s *InvoicingService) effectiveTaxRate(override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return s.taxRate
}

func validateInput(input *InvoiceInput) error {
	if input.Status == "" {
		input.Status = models.StatusDraft
	}
	if !input.Status.IsValid() {
		return &models.ValidationError{Field: "status", Message: "unknown status"}
	}
	if len(input.LineItems) == 0 {
		return &models.ValidationError{Field: "lineItems", Message: "at least one line item is required"}
	}
	for _, item := range input.LineItems {
		if item.Quantity.IsNegative() || item.Rate.IsNegative() {
			return &models.ValidationError{Field: "lineItems", Message: "quantity and rate cannot be negative"}
		}
	}
	return nil
}
