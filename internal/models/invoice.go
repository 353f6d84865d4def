package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	StatusDraft         InvoiceStatus = "draft"
	StatusSent          InvoiceStatus = "sent"
	StatusPaid          InvoiceStatus = "paid"
	StatusOverdue       InvoiceStatus = "overdue"
	StatusPartiallyPaid InvoiceStatus = "partially_paid"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusPartiallyPaid:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// LineItem is one billable row on an invoice. It has no identity of its own;
// Amount is always Quantity * Rate.
type LineItem struct {
	ServiceID   *uint           `json:"serviceId,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Payment is one recorded receipt of funds. Payments are immutable once
// created; Ids are allocated per invoice starting at 1.
type Payment struct {
	ID            int             `json:"Id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
}

// Invoice is the aggregate the billing manager revolves around. Line items and
// payments are stored inside the record as JSON.
type Invoice struct {
	ID               uint                          `json:"Id" gorm:"primaryKey"`
	InvoiceNumber    string                        `json:"invoiceNumber" gorm:"uniqueIndex"`
	ClientID         uint                          `json:"clientId" gorm:"index"`
	Status           InvoiceStatus                 `json:"status" gorm:"index"`
	IssueDate        time.Time                     `json:"issueDate"`
	DueDate          time.Time                     `json:"dueDate"`
	LineItems        datatypes.JSONSlice[LineItem] `json:"lineItems"`
	Notes            string                        `json:"notes"`
	Subtotal         decimal.Decimal               `json:"subtotal" gorm:"type:decimal(10,2)"`
	Tax              decimal.Decimal               `json:"tax" gorm:"type:decimal(10,2)"`
	Total            decimal.Decimal               `json:"total" gorm:"type:decimal(10,2)"`
	Payments         datatypes.JSONSlice[Payment]  `json:"payments"`
	TotalPaid        decimal.Decimal               `json:"totalPaid" gorm:"type:decimal(10,2)"`
	RemainingBalance decimal.Decimal               `json:"remainingBalance" gorm:"type:decimal(10,2)"`
}

func (inv *Invoice) GetID() uint   { return inv.ID }
func (inv *Invoice) SetID(id uint) { inv.ID = id }

// NextPaymentID returns max(existing payment ids, 0) + 1.
func (inv *Invoice) NextPaymentID() int {
	maxID := 0
	for _, p := range inv.Payments {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// ApplyPayment validates the payment, allocates its Id, appends it and updates
// totalPaid, remainingBalance and status as one bundle. A fully paid invoice
// has remaining balance zero, so any further amount fails the balance check
// and the invoice never regresses out of "paid".
func (inv *Invoice) ApplyPayment(p Payment) (*Payment, error) {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}
	if p.Amount.GreaterThan(inv.RemainingBalance) {
		return nil, &ValidationError{Field: "amount", Message: "amount cannot exceed remaining balance"}
	}

	p.ID = inv.NextPaymentID()
	inv.Payments = append(inv.Payments, p)
	inv.TotalPaid = inv.TotalPaid.Add(p.Amount)
	inv.RemainingBalance = inv.Total.Sub(inv.TotalPaid)

	switch {
	case inv.RemainingBalance.IsZero():
		inv.Status = StatusPaid
	case inv.TotalPaid.GreaterThan(decimal.Zero) && inv.Status != StatusPaid:
		inv.Status = StatusPartiallyPaid
	}

	return &p, nil
}
