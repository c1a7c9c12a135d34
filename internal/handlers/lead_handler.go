package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/coastalrealty/coastal-api/internal/errors"
	"github.com/coastalrealty/coastal-api/internal/middleware"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

// LeadHandler handles lead intake HTTP requests.
type LeadHandler struct {
	service services.LeadService
}

// NewLeadHandler creates a new LeadHandler instance.
func NewLeadHandler(service services.LeadService) *LeadHandler {
	return &LeadHandler{
		service: service,
	}
}

// LeadRequest represents the JSON body for the lead intake endpoint.
// Name, Email, and Type are required; the rest is optional context that
// gets folded into the stored message.
type LeadRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Type           string `json:"type" binding:"required"`
	Message        string `json:"message"`
	Source         string `json:"source"`
	Timeline       string `json:"timeline"`
	PriceRange     string `json:"priceRange"`
	ReferralSource string `json:"referralSource"`
}

// LeadResponse represents the response for a captured lead.
type LeadResponse struct {
	Lead *models.Lead `json:"lead"`
}

// Create handles POST /api/lead.
// It validates the submission and stores exactly one lead row.
func (h *LeadHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing lead submission", map[string]interface{}{
			"type":   req.Type,
			"source": req.Source,
		})
	}

	lead, err := h.service.Submit(c.Request.Context(), services.LeadSubmission{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Type:           req.Type,
		Message:        req.Message,
		Source:         req.Source,
		Timeline:       req.Timeline,
		PriceRange:     req.PriceRange,
		ReferralSource: req.ReferralSource,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingLeadFields) || errors.Is(err, services.ErrInvalidLeadType) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to store lead", err)
		return
	}

	c.JSON(http.StatusCreated, LeadResponse{
		Lead: lead,
	})
}
