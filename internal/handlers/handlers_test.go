package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/middleware"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

// setupTestRouter creates a test router with the standard middleware chain.
func setupTestRouter(register func(*gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := logger.New("test")
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	register(router)
	return router
}

// MockLeadService is a mock implementation of LeadService for testing
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) Submit(ctx context.Context, sub services.LeadSubmission) (*models.Lead, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

// MockPropertyService is a mock implementation of PropertyService for testing
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Search(ctx context.Context, params services.PropertySearchParams) ([]models.Property, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) Featured(ctx context.Context, limit int) ([]models.Property, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

// MockNeighborhoodService is a mock implementation of NeighborhoodService for testing
type MockNeighborhoodService struct {
	mock.Mock
}

func (m *MockNeighborhoodService) ListPublished(ctx context.Context) ([]models.Neighborhood, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Neighborhood), args.Error(1)
}

func (m *MockNeighborhoodService) Get(ctx context.Context, slug string) (*models.Neighborhood, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Neighborhood), args.Error(1)
}

func (m *MockNeighborhoodService) PropertiesIn(ctx context.Context, name string) ([]models.Property, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

// MockContentService is a mock implementation of ContentService for testing
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Team(ctx context.Context) ([]models.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *MockContentService) Posts(ctx context.Context) ([]models.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockContentService) Post(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *MockContentService) SitemapEntries(ctx context.Context, baseURL string) ([]services.SitemapEntry, error) {
	args := m.Called(ctx, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.SitemapEntry), args.Error(1)
}
