package maze

import (
	"fmt"
	"math/rand"
)

// Algorithm identifies a spanning-tree carving algorithm.
type Algorithm int

// Supported carving algorithms.
const (
	Backtracking Algorithm = iota
	Prim
)

// Algorithms lists every carving algorithm; Generate chooses among them uniformly.
var Algorithms = []Algorithm{Backtracking, Prim}

func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case Prim:
		return "prim"
	default:
		return "unknown"
	}
}

// carver turns an all-walls maze into a spanning tree.
type carver func(m *Maze, rng *rand.Rand)

func (a Algorithm) carver() (carver, error) {
	switch a {
	case Backtracking:
		return carveBacktracking, nil
	case Prim:
		return carvePrim, nil
	default:
		return nil, fmt.Errorf("unknown maze algorithm %d", int(a))
	}
}

// Generate builds a width x height maze with a uniformly chosen algorithm and
// weighted start/end cells. It returns the algorithm that carved the maze.
func Generate(width, height int, rng *rand.Rand) (*Maze, Algorithm, error) {
	algorithm := Algorithms[rng.Intn(len(Algorithms))]
	m, err := GenerateWith(algorithm, width, height, rng)
	return m, algorithm, err
}

// GenerateWith builds a width x height maze with the given algorithm and weighted
// start/end cells.
func GenerateWith(algorithm Algorithm, width, height int, rng *rand.Rand) (*Maze, error) {
	carve, err := algorithm.carver()
	if err != nil {
		return nil, err
	}

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	carve(m, rng)

	start, end := PickEndpoints(width, height, rng)
	if err := m.SetEndpoints(start, end); err != nil {
		return nil, err
	}
	return m, nil
}

// randomCellPosition generates a uniformly random position within the maze.
func (m *Maze) randomCellPosition(rng *rand.Rand) CellPosition {
	return CellPosition{Row: rng.Intn(m.height), Col: rng.Intn(m.width)}
}
