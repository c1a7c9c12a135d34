package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coastalrealty/coastal-api/internal/database"
	"github.com/coastalrealty/coastal-api/internal/models"
)

// NeighborhoodRepository defines the interface for curated area content.
type NeighborhoodRepository interface {
	// FindPublished returns all published neighborhoods ordered by name.
	FindPublished(ctx context.Context) ([]models.Neighborhood, error)

	// FindBySlug returns the neighborhood with the given slug regardless of
	// its published flag. Returns nil, nil if no row exists.
	FindBySlug(ctx context.Context, slug string) (*models.Neighborhood, error)
}

// neighborhoodRepository is the concrete GORM-backed implementation.
type neighborhoodRepository struct {
	db *database.Database
}

// NewNeighborhoodRepository creates a new instance of NeighborhoodRepository.
func NewNeighborhoodRepository(db *database.Database) NeighborhoodRepository {
	return &neighborhoodRepository{db: db}
}

// FindPublished lists the areas-we-serve index.
func (r *neighborhoodRepository) FindPublished(ctx context.Context) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := r.db.Gorm.WithContext(ctx).
		Where("published = ?", true).
		Order("name ASC").
		Find(&neighborhoods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query published neighborhoods: %w", err)
	}
	return neighborhoods, nil
}

// FindBySlug looks up a single neighborhood. The published gate is a
// service-layer concern; the repository returns whatever exists.
func (r *neighborhoodRepository) FindBySlug(ctx context.Context, slug string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := r.db.Gorm.WithContext(ctx).
		Where("slug = ?", slug).
		First(&neighborhood).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query neighborhood %q: %w", slug, err)
	}
	return &neighborhood, nil
}
