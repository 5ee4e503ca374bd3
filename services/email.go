package services

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"elevation_mentorship_go/config"
	"elevation_mentorship_go/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer dispatches one email. The production implementation talks to
// Resend; tests inject fakes.
type Mailer interface {
	Send(email *Email) error
}

// ResendMailer sends email through the Resend API, or logs to console when
// the config runs in email test mode.
type ResendMailer struct {
	cfg *config.Config
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{cfg: cfg}
}

// Send sends an email using the Resend API
func (m *ResendMailer) Send(email *Email) error {
	// In development mode, log the email instead of sending
	if m.cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode - not actually sent)")
		return nil
	}

	// Validate configuration
	if m.cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(m.cfg.ResendAPIKey)

	// Build the from address
	fromAddress := fmt.Sprintf("%s <%s>", m.cfg.EmailFromName, m.cfg.EmailFrom)

	params := &resend.SendEmailRequest{
		From:    fromAddress,
		To:      email.To,
		Subject: email.Subject,
	}

	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	// Validate we have at least one body
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// messagePolicy strips all markup from the free-form message before it is
// rendered as pre-escaped HTML in the email bodies.
var messagePolicy = bluemonday.StrictPolicy()

// safeMessageHTML sanitizes a submission message and preserves its line
// breaks for HTML rendering. The strict policy output is already escaped;
// escaping it again would render entities literally.
func safeMessageHTML(message string) template.HTML {
	sanitized := messagePolicy.Sanitize(message)
	return template.HTML(strings.ReplaceAll(sanitized, "\n", "<br>"))
}

// loadEmailTemplate loads templateName + ".html" and ".txt" from the
// templates/emails directory and executes both with data.
func loadEmailTemplate(templateName string, data interface{}) (html string, text string, err error) {
	basePath := "templates/emails"

	loadAndExec := func(ext string) (string, error) {
		path := filepath.Join(basePath, templateName+ext)
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template %s: %v", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %v", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to execute template %s: %v", path, err)
		}
		return buf.String(), nil
	}

	htmlContent, err := loadAndExec(".html")
	if err != nil {
		return "", "", err
	}

	textContent, err := loadAndExec(".txt")
	if err != nil {
		return "", "", err
	}

	return htmlContent, textContent, nil
}

// ContactEmailData contains data for both contact notification templates
type ContactEmailData struct {
	FullName       string
	PhoneNumber    string
	Email          string
	AreaOfInterest string
	Message        template.HTML
	MessageText    string
	SubmittedAt    string
}

func contactEmailData(submission *models.ContactSubmission) ContactEmailData {
	return ContactEmailData{
		FullName:       submission.FullName,
		PhoneNumber:    submission.PhoneNumber,
		Email:          submission.Email,
		AreaOfInterest: submission.AreaOfInterest,
		Message:        safeMessageHTML(submission.Message),
		MessageText:    html.UnescapeString(messagePolicy.Sanitize(submission.Message)),
		SubmittedAt:    submission.SubmittedAt.Format(time.RFC1123),
	}
}

// BuildContactThankYouEmail creates the confirmation email sent to the submitter
func BuildContactThankYouEmail(submission *models.ContactSubmission) (*Email, error) {
	data := contactEmailData(submission)

	htmlBody, textBody, err := loadEmailTemplate("contact_thank_you", data)
	if err != nil {
		return nil, err
	}

	return &Email{
		To:       []string{submission.Email},
		Subject:  "Thank you for contacting Elevation Mentorship",
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// BuildContactAdminAlertEmail creates the alert email sent to the administrative address
func BuildContactAdminAlertEmail(submission *models.ContactSubmission, adminEmail string) (*Email, error) {
	data := contactEmailData(submission)

	htmlBody, textBody, err := loadEmailTemplate("contact_admin_alert", data)
	if err != nil {
		return nil, err
	}

	return &Email{
		To:       []string{adminEmail},
		Subject:  fmt.Sprintf("New Contact Form Submission - %s", submission.FullName),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}
