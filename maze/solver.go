package maze

import (
	"fmt"
	"slices"
)

// FindPath returns the critical path from the maze's start to its end, both inclusive.
func FindPath(m *Maze) ([]CellPosition, error) {
	return FindPathBetween(m, m.start, m.end)
}

// FindPathBetween runs a breadth-first search from start over open walls, stopping
// once end is dequeued, and rebuilds the path from the predecessor links.
// On a carved maze the tree path is unique, so the result is deterministic.
func FindPathBetween(m *Maze, start, end CellPosition) ([]CellPosition, error) {
	if !m.InBound(start) || !m.InBound(end) {
		return nil, ErrOutOfBounds
	}
	if start == end {
		return nil, ErrDegenerateEndpoints
	}

	visited := newVisitSet(m.width, m.height)
	parent := make([]CellPosition, m.width*m.height)
	hasParent := make([]bool, m.width*m.height)
	index := func(p CellPosition) int { return p.Row*m.width + p.Col }

	queue := []CellPosition{start}
	visited.add(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			break
		}

		for _, d := range m.cell(cur).OpenDirections() {
			next, ok := m.Neighbor(cur, d)
			if !ok || visited.has(next) {
				continue
			}
			visited.add(next)
			parent[index(next)] = cur
			hasParent[index(next)] = true
			queue = append(queue, next)
		}
	}

	path := []CellPosition{end}
	for cur := end; hasParent[index(cur)]; {
		cur = parent[index(cur)]
		path = append(path, cur)
	}

	if path[len(path)-1] != start {
		return nil, fmt.Errorf("%w: %s to %s", ErrUnreachable, start, end)
	}

	slices.Reverse(path)
	return path, nil
}
