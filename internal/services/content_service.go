package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/repository"
)

// ErrPostNotFound covers both unknown slugs and unpublished drafts.
var ErrPostNotFound = errors.New("blog post not found")

// SitemapEntry is one URL in the generated sitemap.
type SitemapEntry struct {
	URL          string
	LastModified time.Time
	ChangeFreq   string
	Priority     float64
}

// ContentService defines the interface for team, blog, testimonial, and
// sitemap content.
type ContentService interface {
	// Team returns all team members in display order.
	Team(ctx context.Context) ([]models.TeamMember, error)

	// Posts returns published blog posts, most recent first.
	Posts(ctx context.Context) ([]models.BlogPost, error)

	// Post returns the published post with the given slug.
	// Returns ErrPostNotFound for unknown or unpublished slugs.
	Post(ctx context.Context, slug string) (*models.BlogPost, error)

	// Testimonials returns all testimonials, featured first.
	Testimonials(ctx context.Context) ([]models.Testimonial, error)

	// SitemapEntries returns the static routes plus one entry per
	// published blog post, all rooted at baseURL.
	SitemapEntries(ctx context.Context, baseURL string) ([]SitemapEntry, error)
}

// contentService is the concrete implementation of ContentService.
type contentService struct {
	repo repository.ContentRepository
	log  *logger.Logger
}

// NewContentService creates a new instance of ContentService.
func NewContentService(repo repository.ContentRepository, log *logger.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log,
	}
}

func (s *contentService) Team(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.repo.TeamMembers(ctx)
	if err != nil {
		s.log.Error("Failed to load team members", err, nil)
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return members, nil
}

func (s *contentService) Posts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.repo.PublishedPosts(ctx)
	if err != nil {
		s.log.Error("Failed to load blog posts", err, nil)
		return nil, fmt.Errorf("failed to load blog posts: %w", err)
	}
	return posts, nil
}

func (s *contentService) Post(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.PostBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to load blog post", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, fmt.Errorf("failed to load blog post: %w", err)
	}

	if post == nil || !post.Published {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *contentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.Testimonials(ctx)
	if err != nil {
		s.log.Error("Failed to load testimonials", err, nil)
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return testimonials, nil
}

// staticSitemapRoutes lists the fixed site pages with their crawl hints.
var staticSitemapRoutes = []struct {
	path       string
	changeFreq string
	priority   float64
}{
	{"", "monthly", 1.0},
	{"/search", "daily", 0.9},
	{"/team", "monthly", 0.8},
	{"/blog", "weekly", 0.8},
	{"/contact", "monthly", 0.7},
	{"/valuation", "monthly", 0.7},
}

// SitemapEntries builds the sitemap: the static routes stamped with the
// current time, then one entry per published post stamped with its last
// update.
func (s *contentService) SitemapEntries(ctx context.Context, baseURL string) ([]SitemapEntry, error) {
	now := time.Now()

	entries := make([]SitemapEntry, 0, len(staticSitemapRoutes))
	for _, route := range staticSitemapRoutes {
		entries = append(entries, SitemapEntry{
			URL:          baseURL + route.path,
			LastModified: now,
			ChangeFreq:   route.changeFreq,
			Priority:     route.priority,
		})
	}

	posts, err := s.repo.PublishedPosts(ctx)
	if err != nil {
		s.log.Error("Failed to load posts for sitemap", err, nil)
		return nil, fmt.Errorf("failed to load posts for sitemap: %w", err)
	}

	for _, post := range posts {
		entries = append(entries, SitemapEntry{
			URL:          baseURL + "/blog/" + post.Slug,
			LastModified: post.UpdatedAt,
			ChangeFreq:   "monthly",
			Priority:     0.6,
		})
	}

	return entries, nil
}
