package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/maze"
	"github.com/beka-birhanu/vinom-mazestats/service/i"
)

// ErrInvalidMaze is returned when a supplied maze is not a carved spanning tree.
var ErrInvalidMaze = errors.New("invalid maze")

var _ i.MazeInspector = &Analyzer{}

// Inspect imports a hand-made maze, checks that it is a spanning tree, and classifies
// the branches along its critical path with the same rules used for generated mazes.
func (a *Analyzer) Inspect(cells [][]maze.Cell, start, end maze.CellPosition) (*maze.Complexity, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, domain.ErrInvalidDimension)
	}
	if err := domain.ValidateDimensions(len(cells[0]), len(cells)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	m, err := maze.FromCells(cells, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	path, err := maze.FindPath(m)
	if err != nil {
		// Validate guarantees a spanning tree, so a missing path is our bug.
		return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	c, err := a.classifier.AnalyzePath(m, path)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Inspected %dx%d maze: path length=%d intersections=%d", m.Width(), m.Height(), c.PathLength, c.Count))
	return c, nil
}
