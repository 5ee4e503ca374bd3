package handlers

import (
	"net/http"
	"strconv"

	"elevation_mentorship_go/content"

	"github.com/labstack/echo/v4"
)

// FAQPartialHandler re-renders the FAQ list with the single-open disclosure
// rule applied: clicking the open question collapses it, clicking another
// switches to it. Swapped in place via htmx.
func (h *Handler) FAQPartialHandler(c echo.Context) error {
	open := content.FAQClosed
	if v, err := strconv.Atoi(c.QueryParam("open")); err == nil {
		open = v
	}
	clicked, err := strconv.Atoi(c.QueryParam("clicked"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid FAQ index")
	}

	data := struct {
		FAQs    []content.FAQ
		OpenFAQ int
	}{
		FAQs:    content.FAQs,
		OpenFAQ: content.ToggleFAQ(open, clicked),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return h.Renderer.RenderPartial(c.Response().Writer, "landing.html", "faq_items", data)
}
