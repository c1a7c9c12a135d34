package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/coastalrealty/coastal-api/internal/errors"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

// NeighborhoodHandler handles neighborhood page HTTP requests.
type NeighborhoodHandler struct {
	service services.NeighborhoodService
}

// NewNeighborhoodHandler creates a new NeighborhoodHandler instance.
func NewNeighborhoodHandler(service services.NeighborhoodService) *NeighborhoodHandler {
	return &NeighborhoodHandler{
		service: service,
	}
}

// NeighborhoodData represents a neighborhood page in the API response.
type NeighborhoodData struct {
	ID              uint             `json:"id"`
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Image           string           `json:"image,omitempty"`
	AvgPrice        int64            `json:"avgPrice,omitempty"`
	AvgPriceDisplay string           `json:"avgPriceDisplay,omitempty"`
	TotalHomes      int              `json:"totalHomes,omitempty"`
	Features        []string         `json:"features"`
	Schools         models.Schools   `json:"schools"`
	Amenities       models.Amenities `json:"amenities"`
}

// NeighborhoodListResponse represents the areas-we-serve index response.
type NeighborhoodListResponse struct {
	Neighborhoods []NeighborhoodData `json:"neighborhoods"`
	Count         int                `json:"count"`
}

// NeighborhoodResponse represents a single neighborhood page response.
type NeighborhoodResponse struct {
	Neighborhood NeighborhoodData `json:"neighborhood"`
}

// List handles GET /api/neighborhoods.
// It returns all published neighborhoods ordered by name.
func (h *NeighborhoodHandler) List(c *gin.Context) {
	neighborhoods, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list neighborhoods", err)
		return
	}

	results := make([]NeighborhoodData, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		results = append(results, mapNeighborhoodToDTO(&n))
	}

	c.JSON(http.StatusOK, NeighborhoodListResponse{
		Neighborhoods: results,
		Count:         len(results),
	})
}

// Get handles GET /api/neighborhoods/:slug.
// Unknown and unpublished slugs both return 404.
func (h *NeighborhoodHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	neighborhood, err := h.service.Get(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrNeighborhoodNotFound) {
			apierrors.NotFound(c, "Neighborhood not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load neighborhood", err)
		return
	}

	c.JSON(http.StatusOK, NeighborhoodResponse{
		Neighborhood: mapNeighborhoodToDTO(neighborhood),
	})
}

// Properties handles GET /api/neighborhoods/:slug/properties.
// It cross-references active listings against the neighborhood's display
// name, capped at 6.
func (h *NeighborhoodHandler) Properties(c *gin.Context) {
	slug := c.Param("slug")

	neighborhood, err := h.service.Get(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrNeighborhoodNotFound) {
			apierrors.NotFound(c, "Neighborhood not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load neighborhood", err)
		return
	}

	properties, err := h.service.PropertiesIn(c.Request.Context(), neighborhood.Name)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load neighborhood listings", err)
		return
	}

	results := make([]PropertyData, 0, len(properties))
	for _, p := range properties {
		results = append(results, mapPropertyToDTO(&p))
	}

	c.JSON(http.StatusOK, PropertySearchResponse{
		Properties: results,
		Count:      len(results),
	})
}

// mapNeighborhoodToDTO converts a Neighborhood model to its DTO.
func mapNeighborhoodToDTO(n *models.Neighborhood) NeighborhoodData {
	dto := NeighborhoodData{
		ID:        n.ID,
		Slug:      n.Slug,
		Name:      n.Name,
		Features:  n.Features,
		Schools:   n.Schools,
		Amenities: n.Amenities,
	}

	if n.Description != nil {
		dto.Description = *n.Description
	}
	if n.Image != nil {
		dto.Image = *n.Image
	}
	if n.AvgPrice != nil {
		dto.AvgPrice = n.AvgPrice.Dollars()
		dto.AvgPriceDisplay = n.AvgPrice.Format()
	}
	if n.TotalHomes != nil {
		dto.TotalHomes = *n.TotalHomes
	}

	return dto
}
