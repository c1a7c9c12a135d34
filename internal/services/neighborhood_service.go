package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/repository"
)

// ErrNeighborhoodNotFound covers both unknown slugs and unpublished pages;
// callers cannot distinguish the two.
var ErrNeighborhoodNotFound = errors.New("neighborhood not found")

// NeighborhoodService defines the interface for curated area content.
type NeighborhoodService interface {
	// ListPublished returns all published neighborhoods ordered by name.
	ListPublished(ctx context.Context) ([]models.Neighborhood, error)

	// Get returns the published neighborhood with the given slug.
	// Returns ErrNeighborhoodNotFound for unknown or unpublished slugs.
	Get(ctx context.Context, slug string) (*models.Neighborhood, error)

	// PropertiesIn returns up to 6 active listings whose city or
	// neighborhood text contains the given display name.
	PropertiesIn(ctx context.Context, name string) ([]models.Property, error)
}

// neighborhoodService is the concrete implementation of NeighborhoodService.
type neighborhoodService struct {
	repo       repository.NeighborhoodRepository
	properties repository.PropertyRepository
	log        *logger.Logger
}

// NewNeighborhoodService creates a new instance of NeighborhoodService.
func NewNeighborhoodService(repo repository.NeighborhoodRepository, properties repository.PropertyRepository, log *logger.Logger) NeighborhoodService {
	return &neighborhoodService{
		repo:       repo,
		properties: properties,
		log:        log,
	}
}

// ListPublished lists the areas-we-serve index.
func (s *neighborhoodService) ListPublished(ctx context.Context) ([]models.Neighborhood, error) {
	neighborhoods, err := s.repo.FindPublished(ctx)
	if err != nil {
		s.log.Error("Failed to list neighborhoods", err, nil)
		return nil, fmt.Errorf("failed to list neighborhoods: %w", err)
	}
	return neighborhoods, nil
}

// Get resolves a neighborhood page. Unpublished rows are treated exactly
// like missing ones.
func (s *neighborhoodService) Get(ctx context.Context, slug string) (*models.Neighborhood, error) {
	neighborhood, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to load neighborhood", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, fmt.Errorf("failed to load neighborhood: %w", err)
	}

	if neighborhood == nil || !neighborhood.Published {
		s.log.Debug("Neighborhood not found or unpublished", map[string]interface{}{
			"slug": slug,
		})
		return nil, ErrNeighborhoodNotFound
	}

	return neighborhood, nil
}

// PropertiesIn cross-references listings against a neighborhood's display
// name.
func (s *neighborhoodService) PropertiesIn(ctx context.Context, name string) ([]models.Property, error) {
	properties, err := s.properties.FindByNeighborhood(ctx, name)
	if err != nil {
		s.log.Error("Failed to cross-reference neighborhood listings", err, map[string]interface{}{
			"name": name,
		})
		return nil, fmt.Errorf("failed to load neighborhood listings: %w", err)
	}
	return properties, nil
}
