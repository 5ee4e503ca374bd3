package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// StatusNew is the fixed initial status of every submission.
	StatusNew = "new"
	// SourceWebsiteContactForm tags the origin channel of a submission.
	SourceWebsiteContactForm = "website_contact_form"
	// ContactsCollection is the MongoDB collection holding submissions.
	ContactsCollection = "contacts"
)

// Area of interest options offered by the contact form dropdown.
const (
	AreaPersonalDevelopment = "Personal Development & Wellbeing"
	AreaFinance             = "Finance & Wealth Creation"
	AreaBusiness            = "Business, Marketing & Entrepreneurship"
	AreaNetworking          = "Networking, Community & Specialized Mentoring"
)

// AreaOptions lists the valid areas in dropdown order.
var AreaOptions = []string{
	AreaPersonalDevelopment,
	AreaFinance,
	AreaBusiness,
	AreaNetworking,
}

// ContactSubmission is the persisted record of one contact form submission.
// Records are immutable after creation; there is no update or delete path.
type ContactSubmission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName       string             `bson:"fullName" json:"fullName"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	Email          string             `bson:"email" json:"email"`
	AreaOfInterest string             `bson:"areaOfInterest" json:"areaOfInterest"`
	Message        string             `bson:"message" json:"message"`
	SubmittedAt    time.Time          `bson:"submittedAt" json:"submittedAt"`
	Status         string             `bson:"status" json:"status"`
	Source         string             `bson:"source" json:"source"`
}

// emailRegex deliberately mirrors the loose pattern the form has always used:
// non-whitespace, non-@ segments around a single @ and at least one dot in
// the domain. It accepts addresses like "a@b..com"; deployed clients rely on
// the loose pattern, so it must not be tightened.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address matches the contact form pattern.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidArea reports whether area is one of the fixed dropdown options.
func IsValidArea(area string) bool {
	for _, option := range AreaOptions {
		if option == area {
			return true
		}
	}
	return false
}
