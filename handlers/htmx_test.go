package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFAQPartialHandler(t *testing.T) {
	h, e := newPageHandler(t)

	t.Run("Opens Clicked Question", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/htmx/faq?open=0&clicked=2", nil)
		c.Echo().Renderer = e.Renderer

		err := h.FAQPartialHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "faq-item open")
	})

	t.Run("Clicking Open Question Collapses All", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/htmx/faq?open=2&clicked=2", nil)
		c.Echo().Renderer = e.Renderer

		err := h.FAQPartialHandler(c)
		assert.NoError(t, err)
		assert.NotContains(t, rec.Body.String(), "faq-item open")
	})

	t.Run("Missing Clicked Parameter", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/htmx/faq?open=1", nil)
		c.Echo().Renderer = e.Renderer

		err := h.FAQPartialHandler(c)
		assert.Error(t, err)
	})
}
