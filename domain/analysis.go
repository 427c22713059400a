package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	minMazeDimension = 2
	maxMazeDimension = 1000
	maxWorkers       = 256
)

// Validation errors.
var (
	ErrInvalidDimension   = errors.New("maze width and height must be between 2 and 1000")
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	ErrInvalidWorkerCount = errors.New("worker count must be between 1 and 256")
)

// Report statuses.
const (
	StatusQueued = "queued"
	StatusDone   = "done"
	StatusFailed = "failed"
)

// AnalysisConfig holds the free parameters of one analysis run.
type AnalysisConfig struct {
	Width   int   `json:"width" bson:"width"`
	Height  int   `json:"height" bson:"height"`
	Samples int   `json:"samples" bson:"samples"`
	Workers int   `json:"workers" bson:"workers"`
	Seed    int64 `json:"seed" bson:"seed"`
}

// ValidateDimensions rejects grids outside the supported size range.
func ValidateDimensions(width, height int) error {
	if width < minMazeDimension || height < minMazeDimension ||
		width > maxMazeDimension || height > maxMazeDimension {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// Validate rejects a configuration before any maze is generated.
func (c AnalysisConfig) Validate() error {
	if err := ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, c.Samples)
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, c.Workers)
	}
	return nil
}

// Sample is the pair of figures extracted from one maze.
type Sample struct {
	PathLength    int
	Intersections int
	Algorithm     string
}

// PercentileValue states that Percent% of samples have a value <= Value.
type PercentileValue struct {
	Percent float64 `json:"percent" bson:"percent"`
	Value   int     `json:"value" bson:"value"`
}

// Distribution summarises one figure across all samples.
type Distribution struct {
	Percentiles []PercentileValue `json:"percentiles" bson:"percentiles"`
	Mean        float64           `json:"mean" bson:"mean"`
	Median      float64           `json:"median" bson:"median"`
	StdDev      float64           `json:"std_dev" bson:"stdDev"`
	Min         int               `json:"min" bson:"min"`
	Max         int               `json:"max" bson:"max"`
}

// Report is the outcome of an analysis run.
type Report struct {
	ID            uuid.UUID      `json:"id" bson:"-"`
	Status        string         `json:"status" bson:"status"`
	Error         string         `json:"error,omitempty" bson:"error,omitempty"`
	Config        AnalysisConfig `json:"config" bson:"config"`
	PathLength    Distribution   `json:"path_length" bson:"pathLength"`
	Intersections Distribution   `json:"intersections" bson:"intersections"`
	Algorithms    map[string]int `json:"algorithms" bson:"algorithms"`
	Regenerated   int            `json:"regenerated" bson:"regenerated"`
	Duration      time.Duration  `json:"duration" bson:"duration"`
	CreatedAt     time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updatedAt"`
}

// NewQueuedReport creates the placeholder report of a job waiting to run.
func NewQueuedReport(id uuid.UUID, cfg AnalysisConfig) *Report {
	now := time.Now().UTC()
	return &Report{
		ID:        id,
		Status:    StatusQueued,
		Config:    cfg,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AnalysisJob is a queued request to run an analysis.
type AnalysisJob struct {
	ID       uuid.UUID
	Config   AnalysisConfig
	QueuedAt time.Time
}

// ErrReportNotFound is returned when no report exists for an ID.
var ErrReportNotFound = errors.New("report not found")
