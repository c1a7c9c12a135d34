package handlers

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/coastalrealty/coastal-api/internal/errors"
	"github.com/coastalrealty/coastal-api/internal/services"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapHandler serves the crawler surface: sitemap.xml and robots.txt.
type SitemapHandler struct {
	service services.ContentService
	baseURL string
}

// NewSitemapHandler creates a new SitemapHandler instance. baseURL is the
// canonical site origin without a trailing slash.
func NewSitemapHandler(service services.ContentService, baseURL string) *SitemapHandler {
	return &SitemapHandler{
		service: service,
		baseURL: baseURL,
	}
}

// sitemapURLSet is the urlset document root.
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapURL is one url element.
type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap handles GET /sitemap.xml.
// The document lists the static site routes plus one entry per published
// blog post.
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	entries, err := h.service.SitemapEntries(c.Request.Context(), h.baseURL)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to build sitemap", err)
		return
	}

	doc := sitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, entry := range entries {
		doc.URLs = append(doc.URLs, sitemapURL{
			Loc:        entry.URL,
			LastMod:    entry.LastModified.Format("2006-01-02"),
			ChangeFreq: entry.ChangeFreq,
			Priority:   strconv.FormatFloat(entry.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		apierrors.InternalServerError(c, "Failed to encode sitemap", err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// Robots handles GET /robots.txt.
// The policy allows everything but the API routes and points crawlers at
// the sitemap.
func (h *SitemapHandler) Robots(c *gin.Context) {
	body := strings.Join([]string{
		"User-agent: *",
		"Allow: /",
		"",
		"Disallow: /api/",
		"Disallow: /admin/",
		"",
		"Sitemap: " + h.baseURL + "/sitemap.xml",
	}, "\n")

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
