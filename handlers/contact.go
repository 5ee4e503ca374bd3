package handlers

import (
	"errors"
	"net/http"

	"elevation_mentorship_go/services"

	"github.com/labstack/echo/v4"
)

// ContactPostHandler handles POST /api/contact. Unparseable bodies and
// validation failures are rejected with specific messages before any side
// effect; downstream failures come back as a generic error, with the
// underlying detail exposed only in development mode.
func (h *Handler) ContactPostHandler(c echo.Context) error {
	var form services.ContactForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	submission, err := h.Contact.Submit(c.Request().Context(), &form)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "Missing required fields",
			})
		case errors.Is(err, services.ErrInvalidEmail):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "Invalid email format",
			})
		case errors.Is(err, services.ErrInvalidArea):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "Invalid area of interest",
			})
		}

		c.Logger().Errorf("Contact form error: %v", err)

		response := map[string]interface{}{
			"error": "Failed to process contact form",
		}
		if h.Cfg.IsDevelopment() {
			response["details"] = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, response)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      submission.ID.Hex(),
	})
}
