package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port               string
	AllowedOrigins     []string
	InvoicePrefix      string
	InvoiceStartNumber int
	TaxRate            decimal.Decimal
	SeedDemoData       bool
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		InvoicePrefix:      getEnv("INVOICE_PREFIX", "INV"),
		InvoiceStartNumber: getEnvInt("INVOICE_START_NUMBER", 1),
		TaxRate:            getEnvDecimal("TAX_RATE", "0.10"),
		SeedDemoData:       getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
