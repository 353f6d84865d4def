package config

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"billing-manager-backend/internal/models"
	"billing-manager-backend/internal/repository"
)

// Seed loads a small demo fixture, standing in for the mock data the tool
// ships with. Only runs when SEED_DEMO_DATA=true.
func Seed(db *gorm.DB) error {
	clientRepo := repository.NewClientRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	clients := []models.Client{
		{Name: "Sarah Mitchell", Company: "Mitchell Design Co", Email: "sarah@mitchelldesign.com", Phone: "555-0101", Address: "12 Harbor St, Portland"},
		{Name: "James Okafor", Company: "Okafor Consulting", Email: "james@okaforconsulting.com", Phone: "555-0102", Address: "88 Lake Ave, Chicago"},
	}
	for i := range clients {
		if err := clientRepo.Create(&clients[i]); err != nil {
			return err
		}
	}

	services := []models.Service{
		{Name: "Web Design", Description: "Custom website design", Unit: "hour", Price: decimal.RequireFromString("85.00")},
		{Name: "Consulting", Description: "Business and technical consulting", Unit: "hour", Price: decimal.RequireFromString("120.00")},
		{Name: "Hosting", Description: "Managed hosting, billed monthly", Unit: "month", Price: decimal.RequireFromString("25.00")},
	}
	for i := range services {
		if err := serviceRepo.Create(&services[i]); err != nil {
			return err
		}
	}

	now := time.Now()
	webDesignID := services[0].ID
	consultingID := services[1].ID

	invoices := []models.Invoice{
		{
			InvoiceNumber: "INV-001",
			ClientID:      clients[0].ID,
			Status:        models.StatusSent,
			IssueDate:     now.AddDate(0, 0, -14),
			DueDate:       now.AddDate(0, 0, 16),
			LineItems: datatypes.NewJSONSlice([]models.LineItem{
				{ServiceID: &webDesignID, Description: "Web Design", Quantity: decimal.NewFromInt(10), Rate: decimal.RequireFromString("10.00"), Amount: decimal.RequireFromString("100.00")},
			}),
			Subtotal:         decimal.RequireFromString("100.00"),
			Tax:              decimal.RequireFromString("10.00"),
			Total:            decimal.RequireFromString("110.00"),
			Payments:         datatypes.NewJSONSlice([]models.Payment{}),
			TotalPaid:        decimal.Zero,
			RemainingBalance: decimal.RequireFromString("110.00"),
		},
		{
			InvoiceNumber: "INV-002",
			ClientID:      clients[1].ID,
			Status:        models.StatusPartiallyPaid,
			IssueDate:     now.AddDate(0, 0, -30),
			DueDate:       now.AddDate(0, 0, -5),
			LineItems: datatypes.NewJSONSlice([]models.LineItem{
				{ServiceID: &consultingID, Description: "Consulting", Quantity: decimal.NewFromInt(4), Rate: decimal.RequireFromString("50.00"), Amount: decimal.RequireFromString("200.00")},
			}),
			Subtotal: decimal.RequireFromString("200.00"),
			Tax:      decimal.RequireFromString("20.00"),
			Total:    decimal.RequireFromString("220.00"),
			Payments: datatypes.NewJSONSlice([]models.Payment{
				{ID: 1, Amount: decimal.RequireFromString("120.00"), PaymentDate: now.AddDate(0, 0, -10), PaymentMethod: models.PaymentMethodBankTransfer, Notes: "First installment"},
			}),
			TotalPaid:        decimal.RequireFromString("120.00"),
			RemainingBalance: decimal.RequireFromString("100.00"),
		},
	}
	for i := range invoices {
		if err := invoiceRepo.Create(&invoices[i]); err != nil {
			return err
		}
	}

	return nil
}
