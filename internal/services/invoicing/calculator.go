package invoicing

import (
	"github.com/shopspring/decimal"

	"billing-manager-backend/internal/models"
)

// DefaultTaxRate is the flat rate applied when an invoice does not carry its own.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

// Totals holds the derived money fields of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate derives amount = quantity * rate for every line item and sums the
// amounts into subtotal, tax and total. Pure: the input slice is not modified
// and the same input always yields the same totals.
func Calculate(items []models.LineItem, taxRate decimal.Decimal) ([]models.LineItem, Totals) {
	out := make([]models.LineItem, len(items))
	subtotal := decimal.Zero

	for i, item := range items {
		item.Amount = item.Quantity.Mul(item.Rate)
		out[i] = item
		subtotal = subtotal.Add(item.Amount)
	}

	tax := subtotal.Mul(taxRate)
	return out, Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
