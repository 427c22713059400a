package maze

import "math/rand"

// carveFrame is one level of the depth-first carve: a cell and the shuffled
// directions still to try from it.
type carveFrame struct {
	pos  CellPosition
	dirs [4]Direction
	next int
}

func newCarveFrame(pos CellPosition, rng *rand.Rand) carveFrame {
	f := carveFrame{pos: pos, dirs: Directions}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carveBacktracking carves a randomized depth-first spanning tree starting from a
// uniformly random cell. Frames live on an explicit stack so the depth is bounded
// only by the heap, not by the goroutine stack.
func carveBacktracking(m *Maze, rng *rand.Rand) {
	visited := newVisitSet(m.width, m.height)

	start := m.randomCellPosition(rng)
	visited.add(start)
	stack := []carveFrame{newCarveFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		next, ok := m.Neighbor(top.pos, d)
		if !ok || visited.has(next) {
			continue
		}

		_ = m.openWall(top.pos, d)
		visited.add(next)
		// top is invalid after append.
		stack = append(stack, newCarveFrame(next, rng))
	}
}
