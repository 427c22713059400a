/*
Package maze provides tools for creating and analysing rectangular grid mazes.

It defines the `Maze` structure, composed of `Cell` objects with four wall flags, and
two randomized spanning-tree carvers: a depth-first backtracker that produces long
winding corridors and a frontier-based Prim carver with more uniform branching.

On top of a carved maze the package selects weighted start/end cells, finds the
critical path between them with a breadth-first search, and classifies the branches
leaving that path to count the intersections a solver has to decide at.
*/
package maze

import (
	"errors"
	"fmt"
)

const (
	minMazeDimension = 2
)

// Maze errors.
var (
	ErrInvalidDimension    = errors.New("maze dimensions must be at least 2x2")
	ErrOutOfBounds         = errors.New("position is out of the maze")
	ErrInvalidDirection    = errors.New("invalid direction")
	ErrDegenerateEndpoints = errors.New("start and end cells coincide")
	ErrUnreachable         = errors.New("end cell is unreachable from start cell")
	ErrInvalidLayout       = errors.New("invalid maze layout")
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell (y)
	Col int // Column index of the cell (x)
}

// Step returns the position one cell away in direction d. The result may be out of bounds.
func (p CellPosition) Step(d Direction) CellPosition {
	off := d.Offset()
	return CellPosition{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Maze represents a rectangular maze with a start and an end cell.
// A maze is fully carved before it is queried and is not mutated afterwards.
type Maze struct {
	width  int          // Width of the maze (number of columns)
	height int          // Height of the maze (number of rows)
	grid   [][]Cell     // 2D grid of cells indexed [row][col]
	start  CellPosition // Start cell of the critical path
	end    CellPosition // End cell of the critical path
}

// New initializes an uncarved maze of the given dimensions with every wall present.
func New(width, height int) (*Maze, error) {
	if width < minMazeDimension || height < minMazeDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	grid := make([][]Cell, height)
	for row := range grid {
		grid[row] = make([]Cell, width)
		for col := range grid[row] {
			grid[row][col] = closedCell()
		}
	}

	return &Maze{
		width:  width,
		height: height,
		grid:   grid,
		end:    CellPosition{Row: 0, Col: 1},
	}, nil
}

// FromCells builds a maze from an existing grid, typically one designed by hand.
// The grid is copied. It must be rectangular, at least 2x2 and wall-symmetric,
// and start and end must be distinct in-bound cells.
func FromCells(cells [][]Cell, start, end CellPosition) (*Maze, error) {
	height := len(cells)
	if height == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidLayout)
	}
	width := len(cells[0])

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	for row := range cells {
		if len(cells[row]) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, row, len(cells[row]), width)
		}
		copy(m.grid[row], cells[row])
	}

	if err := m.SetEndpoints(start, end); err != nil {
		return nil, err
	}

	if err := m.checkSymmetry(); err != nil {
		return nil, err
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Start returns the start cell.
func (m *Maze) Start() CellPosition {
	return m.start
}

// End returns the end cell.
func (m *Maze) End() CellPosition {
	return m.end
}

// SetEndpoints sets the start and end cells.
func (m *Maze) SetEndpoints(start, end CellPosition) error {
	if !m.InBound(start) || !m.InBound(end) {
		return fmt.Errorf("%w: start %s end %s", ErrOutOfBounds, start, end)
	}
	if start == end {
		return ErrDegenerateEndpoints
	}

	m.start = start
	m.end = end
	return nil
}

// InBound reports whether pos lies within [0,width)x[0,height).
func (m *Maze) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.height && pos.Col >= 0 && pos.Col < m.width
}

// Cell returns the cell at pos.
func (m *Maze) Cell(pos CellPosition) (Cell, error) {
	if !m.InBound(pos) {
		return Cell{}, ErrOutOfBounds
	}
	return m.grid[pos.Row][pos.Col], nil
}

// cell returns the cell at an in-bound position without checking bounds.
func (m *Maze) cell(pos CellPosition) Cell {
	return m.grid[pos.Row][pos.Col]
}

// Neighbor returns the in-bound position adjacent to pos in direction d.
func (m *Maze) Neighbor(pos CellPosition, d Direction) (CellPosition, bool) {
	next := pos.Step(d)
	return next, m.InBound(next)
}

// IsOpen reports whether the passage from pos towards d is open.
func (m *Maze) IsOpen(pos CellPosition, d Direction) bool {
	if !m.InBound(pos) || !d.Valid() {
		return false
	}
	return !m.cell(pos).HasWall(d)
}

// openWall removes the wall between pos and its neighbor in direction d on both sides.
func (m *Maze) openWall(pos CellPosition, d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}

	next, ok := m.Neighbor(pos, d)
	if !m.InBound(pos) || !ok {
		return ErrOutOfBounds
	}

	m.grid[pos.Row][pos.Col].setWall(d, false)
	m.grid[next.Row][next.Col].setWall(d.Opposite(), false)
	return nil
}

// OpenWallCount returns the number of open passages between adjacent cells.
func (m *Maze) OpenWallCount() int {
	count := 0
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]
			// East and South cover each adjacent pair once.
			if col < m.width-1 && !cell.EastWall {
				count++
			}
			if row < m.height-1 && !cell.SouthWall {
				count++
			}
		}
	}
	return count
}

// Validate checks that the maze is a spanning tree over the grid: walls agree on both
// sides, the outer border is closed, there are exactly width*height-1 passages and
// every cell is reachable from the start.
func (m *Maze) Validate() error {
	if err := m.checkSymmetry(); err != nil {
		return err
	}

	if want, got := m.width*m.height-1, m.OpenWallCount(); got != want {
		return fmt.Errorf("%w: %d open passages, want %d", ErrInvalidLayout, got, want)
	}

	if reached := m.reachableFrom(m.start); reached != m.width*m.height {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrInvalidLayout, reached, m.width*m.height)
	}

	return nil
}

// checkSymmetry verifies that adjacent cells agree on their shared wall and that no
// passage leads off the grid.
func (m *Maze) checkSymmetry() error {
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := m.cell(pos)
			for _, d := range Directions {
				next, ok := m.Neighbor(pos, d)
				if !ok {
					if !cell.HasWall(d) {
						return fmt.Errorf("%w: %s opens %s off the grid", ErrInvalidLayout, pos, d)
					}
					continue
				}
				if cell.HasWall(d) != m.cell(next).HasWall(d.Opposite()) {
					return fmt.Errorf("%w: wall between %s and %s is one-sided", ErrInvalidLayout, pos, next)
				}
			}
		}
	}
	return nil
}

// reachableFrom counts the cells reachable from pos through open walls.
func (m *Maze) reachableFrom(pos CellPosition) int {
	visited := newVisitSet(m.width, m.height)
	visited.add(pos)
	stack := []CellPosition{pos}
	count := 0

	for len(stack) > 0 {
		cur := pop(&stack)
		count++
		for _, d := range m.cell(cur).OpenDirections() {
			next, ok := m.Neighbor(cur, d)
			if ok && !visited.has(next) {
				visited.add(next)
				stack = append(stack, next)
			}
		}
	}
	return count
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex] // Remove the last element
	return popped
}

// visitSet is a dense visited flag per cell.
type visitSet struct {
	width int
	seen  []bool
}

func newVisitSet(width, height int) *visitSet {
	return &visitSet{width: width, seen: make([]bool, width*height)}
}

func (v *visitSet) add(pos CellPosition) {
	v.seen[pos.Row*v.width+pos.Col] = true
}

func (v *visitSet) has(pos CellPosition) bool {
	return v.seen[pos.Row*v.width+pos.Col]
}
