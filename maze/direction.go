package maze

// Direction is one of the four cardinal directions a cell can open towards.
type Direction int

// Cardinal directions. The order is the order open directions are reported in.
const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in canonical order.
var Directions = [4]Direction{North, South, East, West}

var (
	offsets = [4]CellPosition{
		North: {Row: -1, Col: 0},
		South: {Row: 1, Col: 0},
		East:  {Row: 0, Col: 1},
		West:  {Row: 0, Col: -1},
	}

	opposites = [4]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}

	directionNames = [4]string{
		North: "North",
		South: "South",
		East:  "East",
		West:  "West",
	}
)

// Offset returns the unit step of the direction.
func (d Direction) Offset() CellPosition {
	return offsets[d]
}

// Opposite returns the direction pointing back (North<->South, East<->West).
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return directionNames[d]
}
