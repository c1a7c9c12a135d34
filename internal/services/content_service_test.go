package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
)

// MockContentRepository is a mock implementation of ContentRepository for testing
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) TeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *MockContentRepository) PublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockContentRepository) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockContentRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func TestPost_Published(t *testing.T) {
	mockRepo := new(MockContentRepository)
	service := NewContentService(mockRepo, logger.New("test"))
	ctx := context.Background()

	mockRepo.On("PostBySlug", ctx, "waterfront-guide").Return(&models.BlogPost{
		Slug:      "waterfront-guide",
		Title:     "Waterfront Guide",
		Published: true,
	}, nil)

	post, err := service.Post(ctx, "waterfront-guide")

	require.NoError(t, err)
	assert.Equal(t, "Waterfront Guide", post.Title)
}

func TestPost_Draft(t *testing.T) {
	mockRepo := new(MockContentRepository)
	service := NewContentService(mockRepo, logger.New("test"))
	ctx := context.Background()

	mockRepo.On("PostBySlug", ctx, "draft").Return(&models.BlogPost{
		Slug:      "draft",
		Published: false,
	}, nil)

	post, err := service.Post(ctx, "draft")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPost_Unknown(t *testing.T) {
	mockRepo := new(MockContentRepository)
	service := NewContentService(mockRepo, logger.New("test"))
	ctx := context.Background()

	mockRepo.On("PostBySlug", ctx, "unknown").Return(nil, nil)

	post, err := service.Post(ctx, "unknown")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSitemapEntries(t *testing.T) {
	mockRepo := new(MockContentRepository)
	service := NewContentService(mockRepo, logger.New("test"))
	ctx := context.Background()

	updated := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	mockRepo.On("PublishedPosts", ctx).Return([]models.BlogPost{
		{Slug: "waterfront-guide", Published: true, UpdatedAt: updated},
		{Slug: "moving-to-jupiter", Published: true, UpdatedAt: updated},
	}, nil)

	entries, err := service.SitemapEntries(ctx, "https://coastalrealty.com")

	require.NoError(t, err)
	// Six static routes plus one entry per published post.
	require.Len(t, entries, 8)

	assert.Equal(t, "https://coastalrealty.com", entries[0].URL)
	assert.Equal(t, 1.0, entries[0].Priority)
	assert.Equal(t, "daily", entries[1].ChangeFreq)

	var postURLs []string
	for _, e := range entries[6:] {
		postURLs = append(postURLs, e.URL)
		assert.Equal(t, updated, e.LastModified)
		assert.Equal(t, "monthly", e.ChangeFreq)
		assert.Equal(t, 0.6, e.Priority)
	}
	assert.Contains(t, postURLs, "https://coastalrealty.com/blog/waterfront-guide")
	assert.Contains(t, postURLs, "https://coastalrealty.com/blog/moving-to-jupiter")

	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.URL, "https://coastalrealty.com"))
	}
}

func TestTeamAndTestimonials(t *testing.T) {
	mockRepo := new(MockContentRepository)
	service := NewContentService(mockRepo, logger.New("test"))
	ctx := context.Background()

	mockRepo.On("TeamMembers", ctx).Return([]models.TeamMember{
		{Name: "Avery Collins", Title: "Lead Agent", Order: 1},
	}, nil)
	mockRepo.On("Testimonials", ctx).Return([]models.Testimonial{
		{Name: "Sarah & Michael Chen", Rating: 5, Featured: true},
	}, nil)

	team, err := service.Team(ctx)
	require.NoError(t, err)
	assert.Len(t, team, 1)

	testimonials, err := service.Testimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 1)
}
