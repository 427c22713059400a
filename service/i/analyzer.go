package i

import (
	"context"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/maze"
	"github.com/google/uuid"
)

// Analyzer generates a sample of mazes and summarises it.
type Analyzer interface {
	Run(ctx context.Context, cfg domain.AnalysisConfig) (*domain.Report, error)
}

// AnalysisQueue runs analyses in the background.
type AnalysisQueue interface {
	// Push validates cfg and queues it, returning the ID its report will be stored under.
	Push(ctx context.Context, cfg domain.AnalysisConfig) (uuid.UUID, error)

	// Report returns the report stored for a job, whatever its status.
	Report(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

// MazeInspector classifies the critical path of a maze supplied by the caller.
type MazeInspector interface {
	Inspect(cells [][]maze.Cell, start, end maze.CellPosition) (*maze.Complexity, error)
}
