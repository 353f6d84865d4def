package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"billing-manager-backend/internal/config"
	handler "billing-manager-backend/internal/handlers"
	"billing-manager-backend/internal/repository"
	"billing-manager-backend/internal/services/invoicing"
	"billing-manager-backend/internal/services/payments"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	clientRepo := repository.NewClientRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	numbering := invoicing.NumberingPolicy{
		Prefix:         cfg.InvoicePrefix,
		StartingNumber: cfg.InvoiceStartNumber,
	}
	invoicingService := invoicing.NewInvoicingService(invoiceRepo, numbering, cfg.TaxRate, logger)
	ledgerService := payments.NewLedgerService(invoiceRepo, logger)

	clientHandler := handler.NewClientHandler(clientRepo)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoicingService, ledgerService)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Create)
		clients.GET("/:id", clientHandler.Get)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	services := r.Group("/services")
	{
		services.GET("", serviceHandler.List)
		services.POST("", serviceHandler.Create)
		services.GET("/:id", serviceHandler.Get)
		services.PUT("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}

	invoices := r.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)

		invoices.POST("/:id/payments", invoiceHandler.RecordPayment)
		invoices.GET("/:id/payments", invoiceHandler.GetPaymentHistory)
		invoices.GET("/:id/summary", invoiceHandler.GetPaymentSummary)
	}
}
