package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"elevation_mentorship_go/config"
	"elevation_mentorship_go/db"
	"elevation_mentorship_go/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// Validation errors surfaced to the caller with specific messages. Anything
// else coming out of Submit is an integration failure and is reported
// generically.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidArea   = errors.New("invalid area of interest")
)

// ContactForm is the unvalidated submission payload as received on the wire.
type ContactForm struct {
	FullName       string `json:"fullName" form:"fullName"`
	PhoneNumber    string `json:"phoneNumber" form:"phoneNumber"`
	Email          string `json:"email" form:"email"`
	AreaOfInterest string `json:"areaOfInterest" form:"areaOfInterest"`
	Message        string `json:"message" form:"message"`
}

// ContactStore persists one submission and returns its generated identifier.
type ContactStore interface {
	Insert(ctx context.Context, submission *models.ContactSubmission) (string, error)
}

// MongoContactStore writes submissions to the contacts collection. Every
// insert opens its own client and closes it again before returning; no
// connection state is shared between requests.
type MongoContactStore struct {
	cfg *config.Config
}

func NewMongoContactStore(cfg *config.Config) *MongoContactStore {
	return &MongoContactStore{cfg: cfg}
}

func (s *MongoContactStore) Insert(ctx context.Context, submission *models.ContactSubmission) (string, error) {
	client, err := db.ConnectMongo(ctx, s.cfg.MongoURI)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := db.DisconnectMongo(ctx, client); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	collection := client.Database(s.cfg.MongoDB).Collection(models.ContactsCollection)
	result, err := collection.InsertOne(ctx, submission)
	if err != nil {
		return "", fmt.Errorf("failed to insert contact submission: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// ContactService runs the submission pipeline: validate, persist, notify.
// The notify stage does not roll back the persist stage; a record whose
// emails failed stays persisted and the failure is reported to the caller.
type ContactService struct {
	store      ContactStore
	mailer     Mailer
	adminEmail string
}

func NewContactService(store ContactStore, mailer Mailer, adminEmail string) *ContactService {
	return &ContactService{store: store, mailer: mailer, adminEmail: adminEmail}
}

// Validate checks the required fields and the email pattern. It performs no
// side effects; a validation failure aborts the pipeline before any write
// or email dispatch.
func (s *ContactService) Validate(form *ContactForm) error {
	if form.FullName == "" || form.PhoneNumber == "" || form.Email == "" || form.AreaOfInterest == "" {
		return ErrMissingFields
	}
	if !models.IsValidEmail(form.Email) {
		return ErrInvalidEmail
	}
	if !models.IsValidArea(form.AreaOfInterest) {
		return ErrInvalidArea
	}
	return nil
}

// Submit runs the full pipeline for one form. On success it returns the
// persisted submission with its generated identifier set. Any error after
// validation is an integration failure; the returned submission is non-nil
// once the persist stage has succeeded, even if notify failed.
func (s *ContactService) Submit(ctx context.Context, form *ContactForm) (*models.ContactSubmission, error) {
	if err := s.Validate(form); err != nil {
		recordStage(StageValidate, err)
		return nil, err
	}
	recordStage(StageValidate, nil)

	submission := &models.ContactSubmission{
		FullName:       form.FullName,
		PhoneNumber:    form.PhoneNumber,
		Email:          form.Email,
		AreaOfInterest: form.AreaOfInterest,
		Message:        form.Message,
		SubmittedAt:    time.Now().UTC(),
		Status:         models.StatusNew,
		Source:         models.SourceWebsiteContactForm,
	}

	id, err := s.store.Insert(ctx, submission)
	recordStage(StagePersist, err)
	if err != nil {
		return nil, fmt.Errorf("persist stage: %w", err)
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		submission.ID = oid
	}
	log.Printf("Contact submission persisted (id: %s, area: %s)", id, submission.AreaOfInterest)

	if err := s.notify(submission); err != nil {
		recordStage(StageNotify, err)
		// The record stays persisted; there is no compensating rollback.
		return submission, fmt.Errorf("notify stage: %w", err)
	}
	recordStage(StageNotify, nil)

	return submission, nil
}

// notify dispatches the submitter thank-you and the admin alert together
// and waits for both before returning.
func (s *ContactService) notify(submission *models.ContactSubmission) error {
	thankYou, err := BuildContactThankYouEmail(submission)
	if err != nil {
		return err
	}
	adminAlert, err := BuildContactAdminAlertEmail(submission, s.adminEmail)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error { return s.mailer.Send(thankYou) })
	g.Go(func() error { return s.mailer.Send(adminAlert) })
	return g.Wait()
}
