package i

import (
	"context"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/google/uuid"
)

// ReportRepo defines the interface for analysis report persistence.
type ReportRepo interface {
	// Save inserts or updates a report.
	// If the report already exists, it replaces the stored fields. Otherwise, it creates a new one.
	Save(ctx context.Context, report *domain.Report) error

	// ByID retrieves a report by its ID.
	// Returns domain.ErrReportNotFound if no report is stored under the ID.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}
