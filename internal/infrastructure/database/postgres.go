package database

import (
	"fmt"
	"log"

	"github.com/DonIsaac10/Sistema-POS/internal/config"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// People
		&entity.Customer{},
		&entity.Stylist{},
		&entity.Cashier{},
		&entity.Supplier{},

		// Catalog
		&entity.Product{},
		&entity.Variant{},
		&entity.Coupon{},

		// Sales
		&entity.Order{},
		&entity.OrderLine{},
		&entity.Tip{},

		// Money out
		&entity.PayrollEntry{},
		&entity.Expense{},
		&entity.Purchase{},

		// System
		&entity.Settings{},
		&entity.CartSnapshot{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData backfills the settings row and creates the default
// cashier when one is configured via environment variables
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settings entity.Settings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.Settings{}
		settings.Backfill()
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create default settings: %v", err)
		}
	} else if settings.Backfill() {
		if err := db.Save(&settings).Error; err != nil {
			log.Printf("Warning: failed to backfill settings: %v", err)
		}
	}

	cashierUser := viper.GetString("CASHIER_USERNAME")
	cashierPassword := viper.GetString("CASHIER_PASSWORD")
	cashierName := viper.GetString("CASHIER_NAME")

	if cashierUser != "" && cashierPassword != "" {
		var existing entity.Cashier
		if err := db.Where("username = ?", cashierUser).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cashierPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash cashier password: %v", err)
			} else {
				if cashierName == "" {
					cashierName = "Caja"
				}
				cashier := entity.Cashier{
					Name:         cashierName,
					Username:     cashierUser,
					PasswordHash: string(hashed),
				}
				if err := db.Create(&cashier).Error; err != nil {
					log.Printf("Warning: failed to create default cashier: %v", err)
				} else {
					log.Printf("Default cashier created: %s", cashierUser)
				}
			}
		} else {
			log.Printf("Default cashier already exists: %s", cashierUser)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
