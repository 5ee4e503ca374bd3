package content

import (
	"testing"

	"elevation_mentorship_go/models"

	"github.com/stretchr/testify/assert"
)

func TestVimeoIDs(t *testing.T) {
	videos := []TestimonialVideo{
		{VimeoID: "1", Title: "First"},
		{VimeoID: "2", Title: "Second"},
		{VimeoID: "1", Title: "First Again"},
		{VimeoID: "3", Title: "Third"},
	}
	assert.Equal(t, []string{"1", "2", "3"}, VimeoIDs(videos))
}

func TestTestimonialSets(t *testing.T) {
	assert.Len(t, HomeTestimonials, 3)
	assert.NotEmpty(t, AllTestimonials)

	// Every home testimonial must also appear on the testimonials page.
	all := make(map[string]bool)
	for _, v := range AllTestimonials {
		all[v.VimeoID] = true
	}
	for _, v := range HomeTestimonials {
		assert.True(t, all[v.VimeoID], "home testimonial %s missing from full set", v.VimeoID)
	}
}

func TestOfferingsMatchAreaOptions(t *testing.T) {
	assert.Len(t, Offerings, len(models.AreaOptions))
	for _, offering := range Offerings {
		assert.Contains(t, models.AreaOptions, offering.Title)
		assert.NotEmpty(t, offering.Items)
	}
}
