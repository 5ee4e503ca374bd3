// Command export-contacts dumps the contact submissions collection to an
// xlsx lead report for follow-up outside the website.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"elevation_mentorship_go/config"
	"elevation_mentorship_go/db"
	"elevation_mentorship_go/models"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	output := flag.String("o", "contact_submissions.xlsx", "output file path")
	since := flag.String("since", "", "only include submissions on or after this date (YYYY-MM-DD)")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := db.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := db.DisconnectMongo(ctx, client); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	filter := bson.M{}
	if *since != "" {
		t, err := time.Parse("2006-01-02", *since)
		if err != nil {
			log.Fatalf("Invalid -since date %q: %v", *since, err)
		}
		filter["submittedAt"] = bson.M{"$gte": t}
	}

	collection := client.Database(cfg.MongoDB).Collection(models.ContactsCollection)
	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}))
	if err != nil {
		log.Fatalf("Failed to query contact submissions: %v", err)
	}

	var submissions []models.ContactSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		log.Fatalf("Failed to read contact submissions: %v", err)
	}

	if err := writeReport(*output, submissions); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	log.Printf("Exported %d submissions to %s", len(submissions), *output)
}

func writeReport(path string, submissions []models.ContactSubmission) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Submissions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Full Name", "Phone Number", "Email", "Area of Interest", "Message", "Submitted At", "Status", "Source"}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, s := range submissions {
		values := []interface{}{
			s.ID.Hex(),
			s.FullName,
			s.PhoneNumber,
			s.Email,
			s.AreaOfInterest,
			s.Message,
			s.SubmittedAt.Format(time.RFC3339),
			s.Status,
			s.Source,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
