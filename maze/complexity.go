package maze

import "errors"

// maxLookahead is how many cells a branch walk inspects before presuming the
// corridor leads somewhere.
const maxLookahead = 3

// CheckedCell is a cell visited while walking a branch, with the direction it was entered by.
type CheckedCell struct {
	Pos       CellPosition
	Direction Direction
}

// Intersection marks a critical-path cell where a valid branch leaves the path.
type Intersection struct {
	Pos    CellPosition
	Number int // 1-based order along the path
}

// BranchArrow describes one branch leaving an intersection.
type BranchArrow struct {
	Pos       CellPosition // first cell of the branch
	Direction Direction    // direction from the path cell into the branch
	Valid     bool
}

// Complexity is the result of classifying every branch along a maze's critical path.
type Complexity struct {
	Path          []CellPosition
	PathLength    int
	Count         int
	Intersections []Intersection
	BranchArrows  []BranchArrow
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithObserver registers a callback that receives every cell a branch walk visits.
func WithObserver(observe func(CheckedCell)) ClassifierOption {
	return func(c *Classifier) {
		c.observe = observe
	}
}

// Classifier decides which branches off the critical path are worth counting.
// A Classifier holds no per-maze state and may be reused.
type Classifier struct {
	observe func(CheckedCell)
}

// NewClassifier creates a Classifier with the given options.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Classifier) checked(pos CellPosition, d Direction) {
	if c.observe != nil {
		c.observe(CheckedCell{Pos: pos, Direction: d})
	}
}

// IsValidBranch walks up to three cells away from the path cell from, starting in
// direction dir. A dead end makes the branch invalid, a fork makes it valid, and a
// corridor is followed until one of those or the step limit, which counts as valid.
func (c *Classifier) IsValidBranch(m *Maze, from CellPosition, dir Direction) bool {
	pos := from.Step(dir)
	c.checked(pos, dir)

	for steps := 0; steps < maxLookahead; steps++ {
		if !m.InBound(pos) {
			return false
		}

		open := m.cell(pos).OpenDirections()
		switch degree := len(open); {
		case degree == 1:
			return false
		case degree >= 3:
			return true
		}

		back := dir.Opposite()
		forward, ok := firstExcept(open, back)
		if !ok {
			return false
		}

		// Only a reversal is tested here, so turning corridors are followed like
		// straight ones.
		if back != dir.Opposite() {
			return true
		}

		dir = forward
		pos = pos.Step(dir)
		c.checked(pos, dir)
	}

	return true
}

// firstExcept returns the first direction in open that is not skip.
func firstExcept(open []Direction, skip Direction) (Direction, bool) {
	for _, d := range open {
		if d != skip {
			return d, true
		}
	}
	return 0, false
}

// Analyze finds the maze's critical path and counts its intersections. The first path
// cell is an intersection when it has more than one open side and a valid branch;
// later cells need more than two open sides and a valid branch. The end cell is not
// examined.
func (c *Classifier) Analyze(m *Maze) (*Complexity, error) {
	path, err := FindPath(m)
	if err != nil {
		return nil, err
	}
	return c.analyzePath(m, path), nil
}

// AnalyzePath classifies the branches of an already solved critical path.
func (c *Classifier) AnalyzePath(m *Maze, path []CellPosition) (*Complexity, error) {
	if len(path) == 0 {
		return nil, errors.New("empty critical path")
	}
	for _, pos := range path {
		if !m.InBound(pos) {
			return nil, ErrOutOfBounds
		}
	}
	return c.analyzePath(m, path), nil
}

func (c *Classifier) analyzePath(m *Maze, path []CellPosition) *Complexity {
	result := &Complexity{Path: path}
	if len(path) < 2 {
		return result
	}
	result.PathLength = len(path)

	onPath := make(map[CellPosition]struct{}, len(path))
	for _, pos := range path {
		onPath[pos] = struct{}{}
	}

	for i, pos := range path[:len(path)-1] {
		open := m.cell(pos).OpenDirections()
		degree := len(open)
		minDegree := 2
		if i == 0 {
			minDegree = 1
		}

		validBranches := 0
		for _, d := range open {
			branchStart := pos.Step(d)
			if _, ok := onPath[branchStart]; ok {
				continue
			}

			valid := c.IsValidBranch(m, pos, d)
			if valid {
				validBranches++
			}
			if degree > minDegree && validBranches >= 1 {
				result.BranchArrows = append(result.BranchArrows, BranchArrow{Pos: branchStart, Direction: d, Valid: valid})
			}
		}

		if degree > minDegree && validBranches >= 1 {
			result.Count++
			result.Intersections = append(result.Intersections, Intersection{Pos: pos, Number: result.Count})
		}
	}

	return result
}
