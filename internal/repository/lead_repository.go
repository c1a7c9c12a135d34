package repository

import (
	"context"
	"fmt"

	"github.com/coastalrealty/coastal-api/internal/database"
	"github.com/coastalrealty/coastal-api/internal/models"
)

// LeadRepository defines the interface for lead persistence.
type LeadRepository interface {
	// Create inserts a new lead and fills in its generated fields.
	// Returns error only for actual database failures.
	Create(ctx context.Context, lead *models.Lead) error

	// All returns every captured lead, newest first. Used by the export CLI.
	All(ctx context.Context) ([]models.Lead, error)
}

// leadRepository is the concrete GORM-backed implementation.
type leadRepository struct {
	db *database.Database
}

// NewLeadRepository creates a new instance of LeadRepository.
func NewLeadRepository(db *database.Database) LeadRepository {
	return &leadRepository{db: db}
}

// Create inserts the lead. Leads are append-only: there is no update or
// delete path anywhere in the application.
func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	if err := r.db.Gorm.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

// All returns every lead ordered by creation time descending.
func (r *leadRepository) All(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	return leads, nil
}
