package handlers

import (
	"context"
	"net/http"

	"elevation_mentorship_go/content"
	"elevation_mentorship_go/models"
	"elevation_mentorship_go/services"

	"github.com/labstack/echo/v4"
)

const siteDescription = "Transform your mindset, build real skills, and unlock your full potential through direct mentorship."

// pageData is the common template payload every page receives.
type pageData struct {
	Title         string
	Description   string
	Path          string
	AppURL        string
	NavItems      []content.NavItem
	AreaOptions   []string
	LaunchPassURL string
	CalLink       string
}

// VideoCard pairs one catalogue entry with its resolved display metadata
// and current view count.
type VideoCard struct {
	content.TestimonialVideo
	Meta services.VideoMetadata
}

func (h *Handler) newPageData(title, path string) pageData {
	return pageData{
		Title:         title,
		Description:   siteDescription,
		Path:          path,
		AppURL:        h.Cfg.AppURL,
		NavItems:      content.NavItems,
		AreaOptions:   models.AreaOptions,
		LaunchPassURL: content.LaunchPassURL,
		CalLink:       content.CalLink,
	}
}

// videoCards resolves metadata for the catalogue entries concurrently and
// attaches the locally stored view counts.
func (h *Handler) videoCards(ctx context.Context, videos []content.TestimonialVideo) []VideoCard {
	resolved := h.Vimeo.ResolveAll(ctx, content.VimeoIDs(videos))

	cards := make([]VideoCard, len(videos))
	for i, video := range videos {
		meta := resolved[video.VimeoID]
		if views, err := h.Views.Get(video.VimeoID); err == nil {
			meta.Views = views
		}
		cards[i] = VideoCard{TestimonialVideo: video, Meta: meta}
	}
	return cards
}

// LandingHandler renders the landing page: hero, offerings, testimonials
// preview, FAQ and footer CTA.
func (h *Handler) LandingHandler(c echo.Context) error {
	data := struct {
		pageData
		Offerings []content.Offering
		Videos    []VideoCard
		FAQs      []content.FAQ
		OpenFAQ   int
	}{
		pageData:  h.newPageData("Elevation Mentorship", "/"),
		Offerings: content.Offerings,
		Videos:    h.videoCards(c.Request().Context(), content.HomeTestimonials),
		FAQs:      content.FAQs,
		OpenFAQ:   0,
	}
	return c.Render(http.StatusOK, "landing.html", data)
}

// AboutHandler renders the about page.
func (h *Handler) AboutHandler(c echo.Context) error {
	data := struct {
		pageData
		Backgrounds []content.Background
	}{
		pageData:    h.newPageData("About Me | Elevation Mentorship", "/about"),
		Backgrounds: content.AboutBackgrounds,
	}
	return c.Render(http.StatusOK, "about.html", data)
}

// TestimonialsHandler renders the full testimonial gallery.
func (h *Handler) TestimonialsHandler(c echo.Context) error {
	data := struct {
		pageData
		Videos []VideoCard
	}{
		pageData: h.newPageData("Testimonials | Elevation Mentorship", "/testimonials"),
		Videos:   h.videoCards(c.Request().Context(), content.AllTestimonials),
	}
	return c.Render(http.StatusOK, "testimonials.html", data)
}
