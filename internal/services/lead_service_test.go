package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
)

// MockLeadRepository is a mock implementation of LeadRepository for testing
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	args := m.Called(ctx, lead)
	if args.Error(0) == nil {
		lead.ID = 1
	}
	return args.Error(0)
}

func (m *MockLeadRepository) All(ctx context.Context) ([]models.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lead), args.Error(1)
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		sub  LeadSubmission
	}{
		{"missing name", LeadSubmission{Email: "jane@x.com", Type: models.LeadTypeContact}},
		{"missing email", LeadSubmission{Name: "Jane", Type: models.LeadTypeContact}},
		{"missing type", LeadSubmission{Name: "Jane", Email: "jane@x.com"}},
		{"empty submission", LeadSubmission{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLeadRepository)
			service := NewLeadService(mockRepo, logger.New("test"))

			lead, err := service.Submit(context.Background(), tt.sub)

			assert.Nil(t, lead)
			assert.ErrorIs(t, err, ErrMissingLeadFields)
			// No record may be created for rejected submissions.
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestSubmit_InvalidType(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Type:  "mystery",
	})

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrInvalidLeadType)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubmit_TimelineOnly(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Type:     models.LeadTypeValuation,
		Timeline: "ASAP",
	})

	require.NoError(t, err)
	require.NotNil(t, lead)
	require.NotNil(t, lead.Message)
	assert.Equal(t, "Timeline: ASAP", *lead.Message)
	assert.Equal(t, models.DefaultLeadSource, lead.Source)
	mockRepo.AssertExpectations(t)
}

func TestSubmit_AllContextFields(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:           "Jane Doe",
		Email:          "jane@x.com",
		Type:           models.LeadTypeSearch,
		Message:        "Looking for a waterfront home",
		Timeline:       "3-6 months",
		PriceRange:     "$1M-$2M",
		ReferralSource: "Google",
	})

	require.NoError(t, err)
	require.NotNil(t, lead.Message)
	assert.Equal(t,
		"Looking for a waterfront home | Timeline: 3-6 months | Budget: $1M-$2M | Source: Google",
		*lead.Message)
}

func TestSubmit_MessageOnly_PassesThrough(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Type:    models.LeadTypeContact,
		Message: "Please call me",
	})

	require.NoError(t, err)
	require.NotNil(t, lead.Message)
	assert.Equal(t, "Please call me", *lead.Message)
}

func TestSubmit_NoMessage_StoresNil(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Type:  models.LeadTypeContact,
	})

	require.NoError(t, err)
	assert.Nil(t, lead.Message)
	assert.Nil(t, lead.Phone)
}

func TestSubmit_CustomSourceAndPhone(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:   "Jane Doe",
		Email:  "jane@x.com",
		Phone:  "(561) 555-0199",
		Type:   models.LeadTypeChat,
		Source: "live-chat",
	})

	require.NoError(t, err)
	assert.Equal(t, "live-chat", lead.Source)
	require.NotNil(t, lead.Phone)
	assert.Equal(t, "(561) 555-0199", *lead.Phone)
}

func TestSubmit_RepositoryError(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	service := NewLeadService(mockRepo, logger.New("test"))

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	lead, err := service.Submit(context.Background(), LeadSubmission{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Type:  models.LeadTypeContact,
	})

	assert.Nil(t, lead)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingLeadFields)
}
