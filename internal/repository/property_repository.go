package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/coastalrealty/coastal-api/internal/database"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/money"
)

// Result caps. Search serves the listings grid (no pagination beyond the
// cap); neighborhood cross-references serve a short teaser strip.
const (
	SearchResultLimit       = 12
	NeighborhoodResultLimit = 6
)

// PropertySearchFilter holds the optional search criteria. PropertyType is
// the stored enum value, already mapped from the UI label by the service
// layer. Price bounds are inclusive and in minor units.
type PropertySearchFilter struct {
	City         string
	PropertyType string
	MinPrice     *money.Cents
	MaxPrice     *money.Cents
}

// PropertyRepository defines the interface for listing data access.
// Listings are read-only from the application's perspective.
type PropertyRepository interface {
	// Search returns active listings matching the filter, newest first,
	// capped at SearchResultLimit.
	Search(ctx context.Context, filter PropertySearchFilter) ([]models.Property, error)

	// FindByNeighborhood returns active listings whose city or neighborhood
	// text contains the given name (case-insensitive), newest first, capped
	// at NeighborhoodResultLimit.
	FindByNeighborhood(ctx context.Context, name string) ([]models.Property, error)

	// FindRecent returns the newest active listings up to limit.
	FindRecent(ctx context.Context, limit int) ([]models.Property, error)
}

// propertyRepository is the concrete GORM-backed implementation.
type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{db: db}
}

// Search applies the filter on top of the always-present status predicate.
// City matching is case-insensitive containment; type is an exact match on
// the stored enum; price bounds are inclusive.
func (r *propertyRepository) Search(ctx context.Context, filter PropertySearchFilter) ([]models.Property, error) {
	q := r.db.Gorm.WithContext(ctx).
		Where("status = ?", models.PropertyStatusActive)

	if filter.City != "" {
		q = q.Where("LOWER(city) LIKE ?", containsPattern(filter.City))
	}
	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var properties []models.Property
	err := q.Order("created_at DESC").
		Limit(SearchResultLimit).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, nil
}

// FindByNeighborhood cross-references curated neighborhood pages against
// the free-text location fields on listings.
func (r *propertyRepository) FindByNeighborhood(ctx context.Context, name string) ([]models.Property, error) {
	pattern := containsPattern(name)

	var properties []models.Property
	err := r.db.Gorm.WithContext(ctx).
		Where("status = ?", models.PropertyStatusActive).
		Where(r.db.Gorm.
			Where("LOWER(city) LIKE ?", pattern).
			Or("LOWER(neighborhood) LIKE ?", pattern)).
		Order("created_at DESC").
		Limit(NeighborhoodResultLimit).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query properties for neighborhood %q: %w", name, err)
	}
	return properties, nil
}

// FindRecent returns the newest active listings.
func (r *propertyRepository) FindRecent(ctx context.Context, limit int) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Gorm.WithContext(ctx).
		Where("status = ?", models.PropertyStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query recent properties: %w", err)
	}
	return properties, nil
}

// containsPattern builds a lowercased LIKE pattern for case-insensitive
// containment. Lowercasing both sides keeps the query portable between
// PostgreSQL and the SQLite driver used in tests.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
