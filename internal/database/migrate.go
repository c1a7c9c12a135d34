package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/coastalrealty/coastal-api/internal/models"
)

// Migrate creates or updates the schema for every application model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Lead{},
		&models.Property{},
		&models.Neighborhood{},
		&models.TeamMember{},
		&models.BlogPost{},
		&models.Testimonial{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
