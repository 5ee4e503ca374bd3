// Package content holds the static marketing content rendered by the page
// templates: navigation, hero copy, offerings, FAQ entries and the
// testimonial video catalogue.
package content

// NavItem is one entry in the top navigation.
type NavItem struct {
	Name string
	Href string
}

// NavItems in display order.
var NavItems = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "About Me", Href: "/about"},
	{Name: "Testimonials", Href: "/testimonials"},
}

// External destinations linked from the hero and footer.
const (
	LaunchPassURL = "https://www.launchpass.com/emg---elevation-mentorship-group-/emg"
	CalLink       = "elevationmentorship"
)

// Offering is one card in the "What I Offer" grid.
type Offering struct {
	Icon  string
	Title string
	Items []string
}

// Offerings match the four areas of interest selectable in the contact form.
var Offerings = []Offering{
	{
		Icon:  "/static/images/networking-icon.svg",
		Title: "Networking, Community & Specialized Mentoring",
		Items: []string{
			"International Networking & Connections",
			"Community Interest / Youth Work Programs",
			"Combat Sports & Coaching Mentoring",
		},
	},
	{
		Icon:  "/static/images/personal-development-icon.svg",
		Title: "Personal Development & Wellbeing",
		Items: []string{
			"Direct Mentoring",
			"Life Coaching",
			"Relationship Advice",
			"Mental Health Support",
		},
	},
	{
		Icon:  "/static/images/finance-icon.svg",
		Title: "Finance & Wealth Creation",
		Items: []string{
			"Trading & Financial Market Education",
			"Money Management",
			"Property Investment",
			"Investment Strategies Beyond Trading (Real Estate, Funds, Crypto)",
		},
	},
	{
		Icon:  "/static/images/business-icon.svg",
		Title: "Business, Marketing & Entrepreneurship",
		Items: []string{
			"E-commerce",
			"Brand Building",
			"Digital Passive Income Education",
			"Business Learning & Development",
			"Marketing",
		},
	},
}

// Background is one credentials card on the about page.
type Background struct {
	Icon  string
	Title string
	Items []string
}

// AboutBackgrounds lists the mentor's track record by field.
var AboutBackgrounds = []Background{
	{
		Icon:  "/static/images/trading-icon.svg",
		Title: "TRADING & FINANCIAL MARKETS",
		Items: []string{
			"8+ years of successful trading experience",
			"CEO of Tradex Capital",
			"Experienced in FX and Futures markets",
		},
	},
	{
		Icon:  "/static/images/ecommerce-icon.svg",
		Title: "E-COMMERCE & BRAND MANAGEMENT",
		Items: []string{
			"Multi-brand portfolio owner",
			"6+ years as industry educator",
			"Successful brand development",
		},
	},
	{
		Icon:  "/static/images/combat-sports-icon.svg",
		Title: "COMBAT SPORTS",
		Items: []string{
			"Former Kickboxing & Boxing Champion",
			"Gym Owner of Evolution Combat Academy",
			"Successful Fight Promoter & Manager",
			"Owner of successful MMA/Combat Sport shows such as BLOODLINE FIGHT SERIES, ECMMA, EFL",
			"Combat Sport Coach (Professional and amateur athletes). Coached multiple UK ranked No.1 fighters, including World, European, British, English, and Area champions",
			"Manager of fighters across the UK & Europe",
			"Co-fouder of Combat Tix",
		},
	},
	{
		Icon:  "/static/images/community-icon.svg",
		Title: "COMMUNITY AND YOUTH",
		Items: []string{
			"Co-Founder of Evolution Impact Initiative",
			"Community interest and youth work program",
		},
	},
	{
		Icon:  "/static/images/music-icon.svg",
		Title: "MUSIC",
		Items: []string{"DJ", "Producer", "Events Organizer"},
	},
}

// TestimonialVideo identifies one publicly hosted Vimeo testimonial.
type TestimonialVideo struct {
	VimeoID  string
	Title    string
	Subtitle string
}

// HomeTestimonials are the three videos previewed on the landing page.
var HomeTestimonials = []TestimonialVideo{
	{VimeoID: "1120754612", Title: "COMPILATION"},
	{VimeoID: "1120757250", Title: "Paul's Success Journey"},
	{VimeoID: "1120756999", Title: "Char's Life Change"},
}

// AllTestimonials is the full gallery shown on /testimonials.
var AllTestimonials = []TestimonialVideo{
	{VimeoID: "1120757555", Title: "LUKE", Subtitle: "BUSINESS OWNER/TRADER"},
	{VimeoID: "1120753366", Title: "Tom. K", Subtitle: "PROFESSIONAL KICK-BOXER"},
	{VimeoID: "1120756833", Title: "SONYA", Subtitle: "BUSINESS OWNER"},
	{VimeoID: "1120756424", Title: "SASHA. S", Subtitle: "ENTREPRENEUR"},
	{VimeoID: "1120755138", Title: "OLLIE M", Subtitle: "BOXER"},
	{VimeoID: "1120756689", Title: "CHRIS ALLEN", Subtitle: "MMA FIGHT PROMOTER, CO-FOUDER BFS OWNER"},
	{VimeoID: "1120757250", Title: "PAUL. W", Subtitle: "BUSINESS OWNER"},
	{VimeoID: "1120756999", Title: "CHAR. W", Subtitle: "BRAND OWNER, BUSINESS OWNER"},
	{VimeoID: "1120754612", Title: "COMPILATION"},
}

// VimeoIDs returns the distinct IDs of the given videos, preserving order.
func VimeoIDs(videos []TestimonialVideo) []string {
	seen := make(map[string]bool, len(videos))
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		if !seen[v.VimeoID] {
			seen[v.VimeoID] = true
			ids = append(ids, v.VimeoID)
		}
	}
	return ids
}
