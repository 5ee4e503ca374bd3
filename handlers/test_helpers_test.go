package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"elevation_mentorship_go/config"
	"elevation_mentorship_go/models"
	"elevation_mentorship_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeContactStore struct {
	mu      sync.Mutex
	inserts []*models.ContactSubmission
	err     error
}

func (s *fakeContactStore) Insert(ctx context.Context, submission *models.ContactSubmission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.inserts = append(s.inserts, submission)
	return primitive.NewObjectID().Hex(), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*services.Email
	err  error
}

func (m *fakeMailer) Send(email *services.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

// writeContactTemplates creates minimal contact email templates so the
// notify stage can run from the handlers package directory.
func writeContactTemplates(t *testing.T) {
	t.Helper()

	dir := "templates/emails"
	err := os.MkdirAll(dir, 0755)
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll("templates") })

	files := map[string]string{
		"contact_thank_you.html":   "<p>Hello {{.FullName}}</p>",
		"contact_thank_you.txt":    "Hello {{.FullName}}",
		"contact_admin_alert.html": "<p>{{.FullName}} - {{.AreaOfInterest}}</p>",
		"contact_admin_alert.txt":  "{{.FullName}} - {{.AreaOfInterest}}",
	}
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		assert.NoError(t, err)
	}
}

// newTestHandler wires a Handler onto fakes. The Vimeo client stays nil
// unless the test needs it.
func newTestHandler(cfg *config.Config, store *fakeContactStore, mailer *fakeMailer) *Handler {
	if cfg == nil {
		cfg = &config.Config{Environment: "test", AppURL: "http://localhost:8080"}
	}
	contact := services.NewContactService(store, mailer, "admin@example.com")
	return New(cfg, contact, nil, services.NewMemoryViewStore(), nil)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}
