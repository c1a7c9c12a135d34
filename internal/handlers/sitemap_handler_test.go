package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/coastalrealty/coastal-api/internal/services"
)

const testBaseURL = "https://coastalrealty.com"

func setupSitemapRouter(mockService *MockContentService) *gin.Engine {
	handler := NewSitemapHandler(mockService, testBaseURL)
	return setupTestRouter(func(r *gin.Engine) {
		r.GET("/sitemap.xml", handler.Sitemap)
		r.GET("/robots.txt", handler.Robots)
	})
}

func TestSitemap(t *testing.T) {
	mockService := new(MockContentService)
	router := setupSitemapRouter(mockService)

	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	mockService.On("SitemapEntries", mock.Anything, testBaseURL).Return([]services.SitemapEntry{
		{URL: testBaseURL, LastModified: now, ChangeFreq: "monthly", Priority: 1.0},
		{URL: testBaseURL + "/search", LastModified: now, ChangeFreq: "daily", Priority: 0.9},
		{URL: testBaseURL + "/blog/waterfront-guide", LastModified: now, ChangeFreq: "monthly", Priority: 0.6},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<loc>https://coastalrealty.com/blog/waterfront-guide</loc>")
	assert.Contains(t, body, "<lastmod>2025-02-01</lastmod>")
	assert.Contains(t, body, "<changefreq>daily</changefreq>")
	assert.Contains(t, body, "<priority>0.9</priority>")
	assert.Contains(t, body, "<priority>1.0</priority>")
}

func TestSitemap_ServiceError(t *testing.T) {
	mockService := new(MockContentService)
	router := setupSitemapRouter(mockService)

	mockService.On("SitemapEntries", mock.Anything, testBaseURL).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRobots(t *testing.T) {
	mockService := new(MockContentService)
	router := setupSitemapRouter(mockService)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /api/")
	assert.Contains(t, body, "Sitemap: https://coastalrealty.com/sitemap.xml")
}
