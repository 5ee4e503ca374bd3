package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Views is the local sqlite database backing per-video play counters.
var Views *gorm.DB

// InitializeViews sets up the view-counter database with WAL mode for concurrency
func InitializeViews(dbPath string, environment string) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	// Enable WAL mode for better concurrency support
	dsn := dbPath + "?_journal_mode=WAL"

	Views, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})

	if err != nil {
		return fmt.Errorf("failed to connect to views database: %w", err)
	}

	log.Println("Views database connection established (WAL mode enabled)")
	return nil
}

// AutoMigrateViews runs migrations for the provided models
func AutoMigrateViews(models ...interface{}) error {
	if Views == nil {
		return fmt.Errorf("views database not initialized")
	}

	err := Views.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run views migrations: %w", err)
	}

	log.Println("Views database migrations completed")
	return nil
}

// CloseViews closes the view-counter database connection
func CloseViews() error {
	if Views == nil {
		return nil
	}

	sqlDB, err := Views.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
