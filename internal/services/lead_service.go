package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/repository"
)

// Service-level errors
var (
	ErrMissingLeadFields = errors.New("name, email, and type are required")
	ErrInvalidLeadType   = errors.New("invalid lead type")
)

// messageDelimiter joins the synthesized context fragments in the stored
// message.
const messageDelimiter = " | "

// LeadSubmission carries a form payload into the service. Name, Email, and
// Type are required; everything else is optional context.
type LeadSubmission struct {
	Name           string
	Email          string
	Phone          string
	Type           string
	Message        string
	Source         string
	Timeline       string
	PriceRange     string
	ReferralSource string
}

// LeadService defines the interface for lead intake.
type LeadService interface {
	// Submit validates the submission, synthesizes the stored message from
	// the optional context fields, and persists exactly one lead.
	// Returns ErrMissingLeadFields or ErrInvalidLeadType for rejected
	// submissions and the stored record on success. Duplicate submissions
	// create duplicate rows; there is no de-duplication key.
	Submit(ctx context.Context, sub LeadSubmission) (*models.Lead, error)
}

// leadService is the concrete implementation of LeadService.
type leadService struct {
	repo repository.LeadRepository
	log  *logger.Logger
}

// NewLeadService creates a new instance of LeadService.
func NewLeadService(repo repository.LeadRepository, log *logger.Logger) LeadService {
	return &leadService{
		repo: repo,
		log:  log,
	}
}

// Submit validates and persists a lead.
func (s *leadService) Submit(ctx context.Context, sub LeadSubmission) (*models.Lead, error) {
	if sub.Name == "" || sub.Email == "" || sub.Type == "" {
		s.log.Warn("Lead submission missing required fields", map[string]interface{}{
			"has_name":  sub.Name != "",
			"has_email": sub.Email != "",
			"has_type":  sub.Type != "",
		})
		return nil, ErrMissingLeadFields
	}

	if !models.ValidLeadType(sub.Type) {
		s.log.Warn("Lead submission with unknown type", map[string]interface{}{
			"type": sub.Type,
		})
		return nil, fmt.Errorf("%w: %q", ErrInvalidLeadType, sub.Type)
	}

	lead := &models.Lead{
		Name:   sub.Name,
		Email:  sub.Email,
		Type:   sub.Type,
		Source: sub.Source,
	}
	if lead.Source == "" {
		lead.Source = models.DefaultLeadSource
	}
	if sub.Phone != "" {
		phone := sub.Phone
		lead.Phone = &phone
	}
	if msg := composeMessage(sub); msg != "" {
		lead.Message = &msg
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		s.log.Error("Failed to store lead", err, map[string]interface{}{
			"email": sub.Email,
			"type":  sub.Type,
		})
		return nil, fmt.Errorf("failed to store lead: %w", err)
	}

	s.log.Info("Lead captured", map[string]interface{}{
		"lead_id": lead.ID,
		"type":    lead.Type,
		"source":  lead.Source,
	})

	return lead, nil
}

// composeMessage joins the free-text message with the labeled context
// fields in fixed order, skipping absent ones. With no context fields the
// message passes through untouched.
func composeMessage(sub LeadSubmission) string {
	if sub.Timeline == "" && sub.PriceRange == "" && sub.ReferralSource == "" {
		return sub.Message
	}

	var parts []string
	if sub.Message != "" {
		parts = append(parts, sub.Message)
	}
	if sub.Timeline != "" {
		parts = append(parts, "Timeline: "+sub.Timeline)
	}
	if sub.PriceRange != "" {
		parts = append(parts, "Budget: "+sub.PriceRange)
	}
	if sub.ReferralSource != "" {
		parts = append(parts, "Source: "+sub.ReferralSource)
	}
	return strings.Join(parts, messageDelimiter)
}
