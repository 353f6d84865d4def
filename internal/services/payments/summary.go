package payments

import (
	"github.com/shopspring/decimal"

	"billing-manager-backend/internal/models"
)

// Summary is the read-side view of an invoice's payment state, recomputed on
// every read for display.
type Summary struct {
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	RemainingBalance  decimal.Decimal `json:"remainingBalance"`
	PaymentPercentage decimal.Decimal `json:"paymentPercentage"`
	IsFullyPaid       bool            `json:"isFullyPaid"`
	IsPartiallyPaid   bool            `json:"isPartiallyPaid"`
}

// Summarize projects the payment state of an invoice. It never mutates the
// invoice and is safe to call repeatedly. The percentage is rounded to two
// decimals and is 0 for a zero-total invoice.
func Summarize(invoice *models.Invoice) Summary {
	totalPaid := invoice.TotalPaid
	remaining := invoice.Total.Sub(totalPaid)

	percentage := decimal.Zero
	if !invoice.Total.IsZero() {
		percentage = totalPaid.Div(invoice.Total).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return Summary{
		TotalPaid:         totalPaid,
		RemainingBalance:  remaining,
		PaymentPercentage: percentage,
		IsFullyPaid:       remaining.IsZero(),
		IsPartiallyPaid:   totalPaid.GreaterThan(decimal.Zero) && remaining.GreaterThan(decimal.Zero),
	}
}
