package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/money"
	"github.com/coastalrealty/coastal-api/internal/repository"
)

// MockPropertyRepository is a mock implementation of PropertyRepository for testing
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Search(ctx context.Context, filter repository.PropertySearchFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByNeighborhood(ctx context.Context, name string) ([]models.Property, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindRecent(ctx context.Context, limit int) ([]models.Property, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func TestSearch_MapsTypeLabel(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))
	ctx := context.Background()

	expected := repository.PropertySearchFilter{PropertyType: models.PropertyTypeSingleFamily}
	mockRepo.On("Search", ctx, expected).Return([]models.Property{}, nil)

	_, err := service.Search(ctx, PropertySearchParams{TypeLabel: "Single Family"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSearch_AllTypesSkipsFilter(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))
	ctx := context.Background()

	mockRepo.On("Search", ctx, repository.PropertySearchFilter{}).Return([]models.Property{}, nil)

	_, err := service.Search(ctx, PropertySearchParams{TypeLabel: AllTypesLabel})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSearch_UnknownLabelPassesThrough(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))
	ctx := context.Background()

	// An unmapped label is forwarded verbatim and matches nothing.
	expected := repository.PropertySearchFilter{PropertyType: "Castle"}
	mockRepo.On("Search", ctx, expected).Return([]models.Property{}, nil)

	_, err := service.Search(ctx, PropertySearchParams{TypeLabel: "Castle"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSearch_ConvertsDollarsToCents(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))
	ctx := context.Background()

	var captured repository.PropertySearchFilter
	mockRepo.On("Search", ctx, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(repository.PropertySearchFilter)
	}).Return([]models.Property{}, nil)

	minPrice := int64(500000)
	maxPrice := int64(1000000)
	_, err := service.Search(ctx, PropertySearchParams{MinPrice: &minPrice, MaxPrice: &maxPrice})

	require.NoError(t, err)
	require.NotNil(t, captured.MinPrice)
	require.NotNil(t, captured.MaxPrice)
	assert.Equal(t, money.Cents(50000000), *captured.MinPrice)
	assert.Equal(t, money.Cents(100000000), *captured.MaxPrice)
}

func TestSearch_CityForwarded(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))
	ctx := context.Background()

	expected := repository.PropertySearchFilter{City: "Jupiter"}
	mockRepo.On("Search", ctx, expected).Return([]models.Property{{City: "Jupiter"}}, nil)

	results, err := service.Search(ctx, PropertySearchParams{City: "Jupiter"})

	require.NoError(t, err)
	assert.Len(t, results, 1)
	mockRepo.AssertExpectations(t)
}

func TestFeatured(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	service := NewPropertyService(mockRepo, logger.New("test"))
	ctx := context.Background()

	mockRepo.On("FindRecent", ctx, 6).Return([]models.Property{{City: "Jupiter"}}, nil)

	results, err := service.Featured(ctx, 6)

	require.NoError(t, err)
	assert.Len(t, results, 1)
	mockRepo.AssertExpectations(t)
}
