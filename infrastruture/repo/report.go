package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepo handles the persistence of analysis reports.
type ReportRepo struct {
	collection *mongo.Collection
}

var _ i.ReportRepo = &ReportRepo{}

// reportDocument is the stored form of a report, keyed by the textual job ID.
type reportDocument struct {
	ID            string         `bson:"_id"`
	domain.Report `bson:",inline"`
}

// NewReportRepo creates a new ReportRepo with the given MongoDB client, database name, and collection name.
func NewReportRepo(client *mongo.Client, dbName, collectionName string) *ReportRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ReportRepo{
		collection: collection,
	}
}

// Save inserts or updates a report in the repository.
// If the report already exists, it replaces the stored fields.
// If the report does not exist, it adds a new record.
func (r *ReportRepo) Save(ctx context.Context, report *domain.Report) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	doc := reportDocument{ID: report.ID.String(), Report: *report}
	filter := bson.M{"_id": doc.ID}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// ByID retrieves a report by its ID.
// Returns domain.ErrReportNotFound if the report is not found.
func (r *ReportRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id.String()}
	var doc reportDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	parsed, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("stored report has a malformed ID %q: %w", doc.ID, err)
	}

	report := doc.Report
	report.ID = parsed
	return &report, nil
}
