package repository

import (
	"strings"

	"gorm.io/gorm"

	"billing-manager-backend/internal/models"
)

type InvoiceRepository struct {
	CRUDRepository[models.Invoice, *models.Invoice]
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		CRUDRepository: NewCRUDRepository[models.Invoice, *models.Invoice](db, "invoice"),
	}
}

// NumbersWithPrefix returns every invoice number starting with "{prefix}-".
// The numbering policy scans these for the current maximum.
func (r *InvoiceRepository) NumbersWithPrefix(prefix string) ([]string, error) {
	var numbers []string
	err := r.DB().Model(&models.Invoice{}).
		Where("invoice_number LIKE ?", prefix+"-%").
		Pluck("invoice_number", &numbers).Error
	return numbers, err
}

// Search filters invoices by invoice-number substring and status, both optional.
func (r *InvoiceRepository) Search(query string, statuses []string) ([]models.Invoice, error) {
	dbQuery := r.DB().Model(&models.Invoice{})

	if query != "" {
		dbQuery = dbQuery.Where("LOWER(invoice_number) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if len(statuses) > 0 {
		dbQuery = dbQuery.Where("status IN ?", statuses)
	}

	var invoices []models.Invoice
	err := dbQuery.Find(&invoices).Error
	return invoices, err
}
