package maze

// Cell represents a single cell in a maze grid.
// A wall flag set to true means the side is closed.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool
}

// closedCell returns a cell with all four walls present.
func closedCell() Cell {
	return Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
}

// HasWall reports whether the side facing d is closed.
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

// setWall sets the wall flag on the side facing d.
func (c *Cell) setWall(d Direction, closed bool) {
	switch d {
	case North:
		c.NorthWall = closed
	case South:
		c.SouthWall = closed
	case East:
		c.EastWall = closed
	case West:
		c.WestWall = closed
	}
}

// OpenDirections returns the open sides in North, South, East, West order.
func (c Cell) OpenDirections() []Direction {
	open := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if !c.HasWall(d) {
			open = append(open, d)
		}
	}
	return open
}

// Degree is the number of open sides: 1 is a dead end, 2 a corridor, 3 or more a fork.
func (c Cell) Degree() int {
	degree := 0
	for _, d := range Directions {
		if !c.HasWall(d) {
			degree++
		}
	}
	return degree
}
