package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"billing-manager-backend/internal/models"
)

// InitDB opens the in-memory store. The shared-cache DSN plus a single pooled
// connection keeps every query on the same in-memory database.
func InitDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open in-memory store: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to access connection pool: ", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Invoice{},
	); err != nil {
		log.Fatal("failed to migrate store: ", err)
	}

	return db
}
