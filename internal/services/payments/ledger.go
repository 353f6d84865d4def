package payments

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"billing-manager-backend/internal/models"
	"billing-manager-backend/internal/repository"
)

// LedgerService records payments against stored invoices. Recording is a
// read-modify-write over payments/totalPaid/remainingBalance/status, so it is
// serialized per invoice: concurrent submissions against the same invoice
// cannot lose updates.
type LedgerService struct {
	invoiceRepo *repository.InvoiceRepository
	logger      *zap.Logger
	locks       sync.Map // invoice id -> *sync.Mutex
}

func NewLedgerService(invoiceRepo *repository.InvoiceRepository, logger *zap.Logger) *LedgerService {
	return &LedgerService{invoiceRepo: invoiceRepo, logger: logger}
}

// PaymentInput is the user-supplied part of a payment. A zero PaymentDate
// defaults to now, an empty method to cash.
type PaymentInput struct {
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod models.PaymentMethod
	Notes         string
}

// RecordPayment appends a validated payment to the invoice and returns the
// fully updated invoice, new totals and status included.
func (s *LedgerService) RecordPayment(invoiceID uint, input PaymentInput) (*models.Invoice, error) {
	lock := s.invoiceLock(invoiceID)
	lock.Lock()
	defer lock.Unlock()

	invoice, err := s.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		Amount:        input.Amount,
		PaymentDate:   input.PaymentDate,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = models.PaymentMethodCash
	}
	if !payment.PaymentMethod.IsValid() {
		return nil, &models.ValidationError{Field: "paymentMethod", Message: "unknown payment method"}
	}

	recorded, err := invoice.ApplyPayment(payment)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(invoice.ID, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.Uint("invoice_id", invoice.ID),
		zap.Int("payment_id", recorded.ID),
		zap.String("amount", recorded.Amount.String()),
		zap.String("status", string(invoice.Status)),
	)
	return invoice, nil
}

// GetPaymentHistory returns the invoice's payments in insertion order.
func (s *LedgerService) GetPaymentHistory(invoiceID uint) ([]models.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	return append([]models.Payment(nil), invoice.Payments...), nil
}

func (s *LedgerService) invoiceLock(id uint) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
