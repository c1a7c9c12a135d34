package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Placeholder image defaults.
const (
	DefaultPlaceholderWidth  = 400
	DefaultPlaceholderHeight = 300
	DefaultPlaceholderText   = "Image"
)

// placeholderCacheControl marks the image as immutable; the same query
// always produces the same SVG.
const placeholderCacheControl = "public, max-age=31536000, immutable"

// PlaceholderHandler serves generated SVG placeholder images.
type PlaceholderHandler struct{}

// NewPlaceholderHandler creates a new PlaceholderHandler instance.
func NewPlaceholderHandler() *PlaceholderHandler {
	return &PlaceholderHandler{}
}

// Image handles GET /api/placeholder.
// Query parameters width, height, and text control the output; missing or
// unparseable values fall back to the defaults.
func (h *PlaceholderHandler) Image(c *gin.Context) {
	width := parseDimension(c.Query("width"), DefaultPlaceholderWidth)
	height := parseDimension(c.Query("height"), DefaultPlaceholderHeight)

	text := c.Query("text")
	if text == "" {
		text = DefaultPlaceholderText
	}

	c.Header("Cache-Control", placeholderCacheControl)
	c.Data(http.StatusOK, "image/svg+xml", []byte(placeholderSVG(width, height, text)))
}

// parseDimension parses a positive pixel dimension, falling back to def.
func parseDimension(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// placeholderSVG renders the placeholder: a gray rectangle with the label
// centered and a dimensions caption beneath it. The label is escaped so
// arbitrary query text cannot break out of the markup.
func placeholderSVG(width, height int, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="#e5e7eb"/>`)
	b.WriteString(`<rect width="100%" height="100%" fill="#6b7280" opacity="0.1"/>`)
	fmt.Fprintf(&b,
		`<text x="50%%" y="50%%" font-family="Arial, sans-serif" font-size="16" font-weight="500" fill="#6b7280" text-anchor="middle" dominant-baseline="middle">%s</text>`,
		escapeXML(text))
	fmt.Fprintf(&b,
		`<text x="50%%" y="65%%" font-family="Arial, sans-serif" font-size="12" fill="#9ca3af" text-anchor="middle" dominant-baseline="middle">%d × %d</text>`,
		width, height)
	b.WriteString(`</svg>`)
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
