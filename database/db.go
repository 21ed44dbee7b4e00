package database

import (
	"fmt"

	"people-manager-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultDSN keeps the store entirely in memory. The shared cache plus the
// single pooled connection below make every session see the same database.
const DefaultDSN = "file::memory:?cache=shared"

func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not access connection pool: %w", err)
	}
	// An in-memory SQLite database exists per connection; pin the pool to one.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("could not enable foreign keys: %w", err)
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Department{}, &models.Person{})
}
