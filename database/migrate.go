package database

import (
	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the app uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Client{},
		&models.CaseCategory{},
		&models.CaseType{},
		&models.LegalCase{},
		&models.CaseTag{},
		&models.Document{},
		&models.Payment{},
		&models.Notification{},
	)
}
