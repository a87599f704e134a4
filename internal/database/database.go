package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pairup/internal/config"
	"pairup/internal/models"
)

var DB *gorm.DB

// Connect opens the sqlite store. The file is created on first use.
func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

// Migrate reconciles the live schema with the declared entity shapes,
// creating tables and columns as needed.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.Group{},
		&models.User{},
		&models.Assignment{},
		&models.Availability{},
		&models.Pairing{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Seed creates the reserved admin group and default admin user when the
// store has no users, and a second group when fewer than two groups exist.
// Safe to run on every boot.
func Seed(cfg *config.Config) error {
	var userCount int64
	if err := DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount == 0 {
		admins := models.Group{ID: models.AdminGroupID, Name: "admins"}
		if err := DB.FirstOrCreate(&admins, models.Group{ID: models.AdminGroupID}).Error; err != nil {
			return fmt.Errorf("failed to create admin group: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			GroupID:      admins.ID,
		}
		if err := DB.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	var groupCount int64
	if err := DB.Model(&models.Group{}).Count(&groupCount).Error; err != nil {
		return fmt.Errorf("failed to count groups: %w", err)
	}
	if groupCount < 2 {
		if err := DB.Create(&models.Group{Name: "test group 1"}).Error; err != nil {
			return fmt.Errorf("failed to create default group: %w", err)
		}
	}

	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
