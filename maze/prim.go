package maze

import "math/rand"

// frontierEdge is a wall of a visited cell that may lead to an unvisited one.
type frontierEdge struct {
	from CellPosition
	dir  Direction
}

// adjacentWalls returns the in-bound walls of pos in canonical direction order.
func (m *Maze) adjacentWalls(pos CellPosition) []frontierEdge {
	walls := make([]frontierEdge, 0, len(Directions))
	for _, d := range Directions {
		if _, ok := m.Neighbor(pos, d); ok {
			walls = append(walls, frontierEdge{from: pos, dir: d})
		}
	}
	return walls
}

// carvePrim grows a spanning tree from a uniformly random cell by repeatedly
// removing a uniformly random edge from the frontier. Edges whose far cell was
// reached some other way are dropped when they are drawn.
func carvePrim(m *Maze, rng *rand.Rand) {
	visited := newVisitSet(m.width, m.height)

	start := m.randomCellPosition(rng)
	visited.add(start)
	frontier := m.adjacentWalls(start)

	for len(frontier) > 0 {
		idx := rng.Intn(len(frontier))
		edge := frontier[idx]
		// Swap-remove keeps the draw uniform over the remaining edges.
		last := len(frontier) - 1
		frontier[idx] = frontier[last]
		frontier = frontier[:last]

		next := edge.from.Step(edge.dir)
		if visited.has(next) {
			continue
		}

		_ = m.openWall(edge.from, edge.dir)
		visited.add(next)
		frontier = append(frontier, m.adjacentWalls(next)...)
	}
}
