package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupPlaceholderRouter() *gin.Engine {
	handler := NewPlaceholderHandler()
	return setupTestRouter(func(r *gin.Engine) {
		r.GET("/api/placeholder", handler.Image)
	})
}

func getPlaceholder(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/placeholder"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceholder_Defaults(t *testing.T) {
	router := setupPlaceholderRouter()

	w := getPlaceholder(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.Contains(t, body, `width="400"`)
	assert.Contains(t, body, `height="300"`)
	assert.Contains(t, body, ">Image<")
	assert.Contains(t, body, "400 × 300")
}

func TestPlaceholder_CustomDimensionsAndText(t *testing.T) {
	router := setupPlaceholderRouter()

	w := getPlaceholder(router, "?width=100&height=50&text=Hi")

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `width="100"`)
	assert.Contains(t, body, `height="50"`)
	assert.Contains(t, body, ">Hi<")
	assert.Contains(t, body, "100 × 50")
}

func TestPlaceholder_InvalidDimensionsFallBack(t *testing.T) {
	router := setupPlaceholderRouter()

	w := getPlaceholder(router, "?width=abc&height=-20")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `width="400"`)
	assert.Contains(t, w.Body.String(), `height="300"`)
}

func TestPlaceholder_EscapesText(t *testing.T) {
	router := setupPlaceholderRouter()

	w := getPlaceholder(router, "?text="+`%3Cscript%3E`)

	body := w.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
