package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/coastalrealty/coastal-api/internal/errors"
	"github.com/coastalrealty/coastal-api/internal/middleware"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

// typeDisplayLabels maps stored property type enums back to the labels the
// search form shows.
var typeDisplayLabels = map[string]string{
	models.PropertyTypeSingleFamily: "Single Family",
	models.PropertyTypeCondo:        "Condo",
	models.PropertyTypeTownhouse:    "Townhouse",
	models.PropertyTypeMultiFamily:  "Multi Family",
	models.PropertyTypeLand:         "Land",
}

// PropertyHandler handles property search HTTP requests.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// PropertySearchRequest represents the query parameters for the search
// endpoint. Prices arrive as whole dollars.
type PropertySearchRequest struct {
	City     string `form:"city"`
	Type     string `form:"type"`
	MinPrice *int64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice *int64 `form:"maxPrice" binding:"omitempty,min=0"`
}

// PropertyData represents a listing in the API response.
// This DTO carries display-ready fields alongside the raw values.
type PropertyData struct {
	ID           uint     `json:"id"`
	MLS          string   `json:"mls"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	ZipCode      string   `json:"zipCode,omitempty"`
	Price        int64    `json:"price"`
	PriceDisplay string   `json:"priceDisplay"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	Sqft         int      `json:"sqft,omitempty"`
	YearBuilt    int      `json:"yearBuilt,omitempty"`
	PropertyType string   `json:"propertyType"`
	TypeLabel    string   `json:"typeLabel"`
	Status       string   `json:"status"`
	Description  string   `json:"description,omitempty"`
	Features     []string `json:"features"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Images       []string `json:"images"`
	DaysOnMarket int      `json:"daysOnMarket,omitempty"`
}

// PropertySearchResponse represents the response for the search endpoint.
type PropertySearchResponse struct {
	Properties []PropertyData `json:"properties"`
	Count      int            `json:"count"`
}

// Search handles GET /api/properties.
// It filters active listings by city, type, and whole-dollar price bounds.
func (h *PropertyHandler) Search(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req PropertySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	if log != nil {
		log.Info("Processing property search", map[string]interface{}{
			"city": req.City,
			"type": req.Type,
		})
	}

	properties, err := h.service.Search(c.Request.Context(), services.PropertySearchParams{
		City:      req.City,
		TypeLabel: req.Type,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
	})
	if err != nil {
		apierrors.InternalServerError(c, "Failed to search properties", err)
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

// featuredLimit caps the home-page teaser strip.
const featuredLimit = 6

// Featured handles GET /api/properties/featured.
// It returns the newest active listings for the home page.
func (h *PropertyHandler) Featured(c *gin.Context) {
	properties, err := h.service.Featured(c.Request.Context(), featuredLimit)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load featured properties", err)
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

// mapPropertyToDTO converts a Property model to a PropertyData DTO.
// It dereferences optional fields and attaches the display price and
// type label.
func mapPropertyToDTO(p *models.Property) PropertyData {
	dto := PropertyData{
		ID:           p.ID,
		MLS:          p.MLS,
		Address:      p.Address,
		City:         p.City,
		ZipCode:      p.ZipCode,
		Price:        p.Price.Dollars(),
		PriceDisplay: p.Price.Format(),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		Features:     p.Features,
		Images:       p.Images,
	}

	if label, ok := typeDisplayLabels[p.PropertyType]; ok {
		dto.TypeLabel = label
	} else {
		dto.TypeLabel = p.PropertyType
	}

	if p.Sqft != nil {
		dto.Sqft = *p.Sqft
	}
	if p.YearBuilt != nil {
		dto.YearBuilt = *p.YearBuilt
	}
	if p.Description != nil {
		dto.Description = *p.Description
	}
	if p.Neighborhood != nil {
		dto.Neighborhood = *p.Neighborhood
	}
	if p.DaysOnMarket != nil {
		dto.DaysOnMarket = *p.DaysOnMarket
	}

	return dto
}
