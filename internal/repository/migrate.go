package repository

import (
	"fmt"

	"catalog_service/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the category, product and users tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}, &domain.User{}); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}
	return nil
}
