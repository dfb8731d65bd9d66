package repositories

import (
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Supplier{},
		&models.Purchase{},
		&models.Sale{},
		&models.Transfer{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
