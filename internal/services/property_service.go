package services

import (
	"context"
	"fmt"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/money"
	"github.com/coastalrealty/coastal-api/internal/repository"
)

// AllTypesLabel is the UI's "no type filter" option.
const AllTypesLabel = "All Types"

// typeLabelMap translates the search form's display labels to the stored
// property type enum.
var typeLabelMap = map[string]string{
	"Single Family": models.PropertyTypeSingleFamily,
	"Condo":         models.PropertyTypeCondo,
	"Townhouse":     models.PropertyTypeTownhouse,
	"Multi Family":  models.PropertyTypeMultiFamily,
	"Land":          models.PropertyTypeLand,
}

// PropertySearchParams holds the raw search inputs as they arrive from the
// query string: a UI type label and whole-dollar price bounds.
type PropertySearchParams struct {
	City      string
	TypeLabel string
	MinPrice  *int64
	MaxPrice  *int64
}

// PropertyService defines the interface for listing queries.
type PropertyService interface {
	// Search maps the UI-level parameters onto a repository filter and
	// returns matching active listings, newest first, capped at 12.
	Search(ctx context.Context, params PropertySearchParams) ([]models.Property, error)

	// Featured returns the newest active listings for teaser strips.
	Featured(ctx context.Context, limit int) ([]models.Property, error)
}

// propertyService is the concrete implementation of PropertyService.
type propertyService struct {
	repo repository.PropertyRepository
	log  *logger.Logger
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(repo repository.PropertyRepository, log *logger.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log,
	}
}

// Search translates UI inputs to stored representations: the type label
// through the fixed lookup, whole-dollar bounds to minor units. An unmapped
// label passes through verbatim and simply matches nothing.
func (s *propertyService) Search(ctx context.Context, params PropertySearchParams) ([]models.Property, error) {
	filter := repository.PropertySearchFilter{
		City: params.City,
	}

	if params.TypeLabel != "" && params.TypeLabel != AllTypesLabel {
		if mapped, ok := typeLabelMap[params.TypeLabel]; ok {
			filter.PropertyType = mapped
		} else {
			filter.PropertyType = params.TypeLabel
		}
	}

	if params.MinPrice != nil {
		min := money.FromDollars(*params.MinPrice)
		filter.MinPrice = &min
	}
	if params.MaxPrice != nil {
		max := money.FromDollars(*params.MaxPrice)
		filter.MaxPrice = &max
	}

	s.log.Info("Searching properties", map[string]interface{}{
		"city":     params.City,
		"type":     filter.PropertyType,
		"has_min":  params.MinPrice != nil,
		"has_max":  params.MaxPrice != nil,
	})

	properties, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error("Property search failed", err, map[string]interface{}{
			"city": params.City,
		})
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	return properties, nil
}

// Featured returns the newest active listings.
func (s *propertyService) Featured(ctx context.Context, limit int) ([]models.Property, error) {
	properties, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to load featured properties", err, nil)
		return nil, fmt.Errorf("failed to load featured properties: %w", err)
	}
	return properties, nil
}
