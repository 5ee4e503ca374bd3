package handlers

import (
	"net/http"

	"elevation_mentorship_go/content"

	"github.com/labstack/echo/v4"
)

// knownVideo reports whether the ID belongs to the configured catalogue.
func knownVideo(videoID string) bool {
	for _, id := range content.VimeoIDs(content.AllTestimonials) {
		if id == videoID {
			return true
		}
	}
	return false
}

// GetVideosHandler returns resolved display metadata and view counts for
// the testimonial catalogue. ?set=home limits to the landing page preview.
func (h *Handler) GetVideosHandler(c echo.Context) error {
	videos := content.AllTestimonials
	if c.QueryParam("set") == "home" {
		videos = content.HomeTestimonials
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"videos": h.videoCards(c.Request().Context(), videos),
	})
}

// RecordViewHandler increments the local play counter for one video.
func (h *Handler) RecordViewHandler(c echo.Context) error {
	videoID := c.Param("id")
	if !knownVideo(videoID) {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}

	views, err := h.Views.Increment(videoID)
	if err != nil {
		c.Logger().Errorf("Failed to record view for %s: %v", videoID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record view")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"videoId": videoID,
		"views":   views,
	})
}

// PlaceholderHandler serves the local static thumbnail asset, the terminal
// link of the fallback chain.
func (h *Handler) PlaceholderHandler(c echo.Context) error {
	if !knownVideo(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}
	return c.File("static/images/testimonial-fallback.png")
}
