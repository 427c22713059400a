// Package analysisapi exposes maze analyses over HTTP.
package analysisapi

import (
	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/maze"
	"github.com/google/uuid"
)

// AnalysisRequest asks for an analysis. Omitted fields take the server defaults.
type AnalysisRequest struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Samples int    `json:"samples"`
	Workers int    `json:"workers"`
	Seed    *int64 `json:"seed"`
}

// toConfig fills the omitted fields of r from defaults.
func (r AnalysisRequest) toConfig(defaults domain.AnalysisConfig) domain.AnalysisConfig {
	cfg := defaults
	if r.Width != 0 {
		cfg.Width = r.Width
	}
	if r.Height != 0 {
		cfg.Height = r.Height
	}
	if r.Samples != 0 {
		cfg.Samples = r.Samples
	}
	if r.Workers != 0 {
		cfg.Workers = r.Workers
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	return cfg
}

// AnalysisAcceptedResponse identifies a queued analysis.
type AnalysisAcceptedResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// PositionDTO is a cell position on the wire.
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func positionFromMaze(p maze.CellPosition) PositionDTO {
	return PositionDTO{Row: p.Row, Col: p.Col}
}

func (p PositionDTO) toMaze() maze.CellPosition {
	return maze.CellPosition{Row: p.Row, Col: p.Col}
}

// CellDTO carries the four wall flags of a cell; true means the side is closed.
type CellDTO struct {
	NorthWall bool `json:"north_wall"`
	SouthWall bool `json:"south_wall"`
	EastWall  bool `json:"east_wall"`
	WestWall  bool `json:"west_wall"`
}

// ComplexityRequest supplies a hand-made maze, indexed cells[row][col].
type ComplexityRequest struct {
	Cells [][]CellDTO  `json:"cells" binding:"required"`
	Start *PositionDTO `json:"start" binding:"required"`
	End   *PositionDTO `json:"end" binding:"required"`
}

func (r ComplexityRequest) toMaze() [][]maze.Cell {
	cells := make([][]maze.Cell, len(r.Cells))
	for row := range r.Cells {
		cells[row] = make([]maze.Cell, len(r.Cells[row]))
		for col, c := range r.Cells[row] {
			cells[row][col] = maze.Cell{NorthWall: c.NorthWall, SouthWall: c.SouthWall, EastWall: c.EastWall, WestWall: c.WestWall}
		}
	}
	return cells
}

// IntersectionDTO marks a path cell with a valid branch.
type IntersectionDTO struct {
	Position PositionDTO `json:"position"`
	Number   int         `json:"number"`
}

// BranchArrowDTO describes one branch leaving an intersection.
type BranchArrowDTO struct {
	Position  PositionDTO `json:"position"`
	Direction string      `json:"direction"`
	Valid     bool        `json:"valid"`
}

// ComplexityResponse is the classification of a maze's critical path.
type ComplexityResponse struct {
	Path              []PositionDTO     `json:"path"`
	PathLength        int               `json:"path_length"`
	IntersectionCount int               `json:"intersection_count"`
	Intersections     []IntersectionDTO `json:"intersections"`
	BranchArrows      []BranchArrowDTO  `json:"branch_arrows"`
}

func newComplexityResponse(c *maze.Complexity) *ComplexityResponse {
	resp := &ComplexityResponse{
		Path:              make([]PositionDTO, len(c.Path)),
		PathLength:        c.PathLength,
		IntersectionCount: c.Count,
		Intersections:     make([]IntersectionDTO, len(c.Intersections)),
		BranchArrows:      make([]BranchArrowDTO, len(c.BranchArrows)),
	}
	for k, p := range c.Path {
		resp.Path[k] = positionFromMaze(p)
	}
	for k, in := range c.Intersections {
		resp.Intersections[k] = IntersectionDTO{Position: positionFromMaze(in.Pos), Number: in.Number}
	}
	for k, a := range c.BranchArrows {
		resp.BranchArrows[k] = BranchArrowDTO{Position: positionFromMaze(a.Pos), Direction: a.Direction.String(), Valid: a.Valid}
	}
	return resp
}
