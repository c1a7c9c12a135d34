package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coastalrealty/coastal-api/internal/database"
	"github.com/coastalrealty/coastal-api/internal/models"
)

// ContentRepository defines the interface for the remaining site content:
// team bios, blog posts, and testimonials.
type ContentRepository interface {
	// TeamMembers returns all team members in display order.
	TeamMembers(ctx context.Context) ([]models.TeamMember, error)

	// PublishedPosts returns published blog posts, most recent first.
	PublishedPosts(ctx context.Context) ([]models.BlogPost, error)

	// PostBySlug returns the post with the given slug regardless of its
	// published flag. Returns nil, nil if no row exists.
	PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)

	// Testimonials returns all testimonials, featured first then in
	// display order.
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
}

// contentRepository is the concrete GORM-backed implementation.
type contentRepository struct {
	db *database.Database
}

// NewContentRepository creates a new instance of ContentRepository.
func NewContentRepository(db *database.Database) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) TeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Gorm.WithContext(ctx).
		Order("display_order ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	return members, nil
}

func (r *contentRepository) PublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Gorm.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}
	return posts, nil
}

func (r *contentRepository) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Gorm.WithContext(ctx).
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query post %q: %w", slug, err)
	}
	return &post, nil
}

func (r *contentRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Gorm.WithContext(ctx).
		Order("featured DESC, display_order ASC").
		Find(&testimonials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	return testimonials, nil
}
