package handlers

import (
	"net/http"
	"testing"

	"elevation_mentorship_go/config"

	"github.com/stretchr/testify/assert"
)

func TestSitemapHandler(t *testing.T) {
	cfg := &config.Config{AppURL: "https://elevationmentorship.co.uk"}
	h := New(cfg, nil, nil, nil, nil)

	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	err := h.SitemapHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://elevationmentorship.co.uk/</loc>")
	assert.Contains(t, body, "<loc>https://elevationmentorship.co.uk/about</loc>")
	assert.Contains(t, body, "<loc>https://elevationmentorship.co.uk/testimonials</loc>")
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}

func TestRobotsHandler(t *testing.T) {
	cfg := &config.Config{AppURL: "https://elevationmentorship.co.uk"}
	h := New(cfg, nil, nil, nil, nil)

	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)

	err := h.RobotsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /api/")
	assert.Contains(t, body, "Sitemap: https://elevationmentorship.co.uk/sitemap.xml")
}
