package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/coastalrealty/coastal-api/internal/errors"
	"github.com/coastalrealty/coastal-api/internal/models"
	"github.com/coastalrealty/coastal-api/internal/services"
)

// ContentHandler handles team, testimonial, and blog HTTP requests.
type ContentHandler struct {
	service services.ContentService
}

// NewContentHandler creates a new ContentHandler instance.
func NewContentHandler(service services.ContentService) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// TeamResponse represents the team page response.
type TeamResponse struct {
	Team  []models.TeamMember `json:"team"`
	Count int                 `json:"count"`
}

// TestimonialsResponse represents the testimonials response.
type TestimonialsResponse struct {
	Testimonials []models.Testimonial `json:"testimonials"`
	Count        int                  `json:"count"`
}

// BlogListResponse represents the blog index response.
type BlogListResponse struct {
	Posts []models.BlogPost `json:"posts"`
	Count int               `json:"count"`
}

// BlogPostResponse represents a single article response.
type BlogPostResponse struct {
	Post *models.BlogPost `json:"post"`
}

// Team handles GET /api/team.
func (h *ContentHandler) Team(c *gin.Context) {
	team, err := h.service.Team(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load team members", err)
		return
	}

	c.JSON(http.StatusOK, TeamResponse{
		Team:  team,
		Count: len(team),
	})
}

// Testimonials handles GET /api/testimonials.
func (h *ContentHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.service.Testimonials(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load testimonials", err)
		return
	}

	c.JSON(http.StatusOK, TestimonialsResponse{
		Testimonials: testimonials,
		Count:        len(testimonials),
	})
}

// Posts handles GET /api/blog.
// Only published posts appear, most recent first.
func (h *ContentHandler) Posts(c *gin.Context) {
	posts, err := h.service.Posts(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load blog posts", err)
		return
	}

	c.JSON(http.StatusOK, BlogListResponse{
		Posts: posts,
		Count: len(posts),
	})
}

// Post handles GET /api/blog/:slug.
// Unknown and unpublished slugs both return 404.
func (h *ContentHandler) Post(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.service.Post(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "Blog post not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load blog post", err)
		return
	}

	c.JSON(http.StatusOK, BlogPostResponse{
		Post: post,
	})
}
