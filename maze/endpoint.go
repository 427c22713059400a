package maze

import "math/rand"

// Endpoint placement weights. Whatever is left after border and interior picks
// from the whole grid.
const (
	BorderProbability   = 0.66
	InteriorProbability = 0.31
)

// endpointRegion is the part of the grid an endpoint is drawn from.
type endpointRegion int

const (
	regionBorder endpointRegion = iota
	regionInterior
	regionAny
)

func pickRegion(rng *rand.Rand) endpointRegion {
	r := rng.Float64()
	switch {
	case r < BorderProbability:
		return regionBorder
	case r < BorderProbability+InteriorProbability:
		return regionInterior
	default:
		return regionAny
	}
}

// PickPosition draws a weighted random cell: with probability BorderProbability from
// the outer ring, with probability InteriorProbability from the strict interior, and
// otherwise from the whole grid. Grids without an interior (width or height of 2)
// draw the interior bucket from the whole grid.
func PickPosition(width, height int, rng *rand.Rand) CellPosition {
	region := pickRegion(rng)
	if region == regionInterior && (width <= 2 || height <= 2) {
		region = regionAny
	}

	switch region {
	case regionBorder:
		return borderPosition(width, height, rng)
	case regionInterior:
		return interiorPosition(width, height, rng)
	default:
		i := rng.Intn(width * height)
		return CellPosition{Row: i / width, Col: i % width}
	}
}

// PickEndpoints draws a start cell and then redraws the end cell until it differs.
func PickEndpoints(width, height int, rng *rand.Rand) (CellPosition, CellPosition) {
	start := PickPosition(width, height, rng)
	end := PickPosition(width, height, rng)
	for end == start {
		end = PickPosition(width, height, rng)
	}
	return start, end
}

// IsBorder reports whether pos lies on the outer ring of a width x height grid.
func IsBorder(pos CellPosition, width, height int) bool {
	return pos.Col == 0 || pos.Col == width-1 || pos.Row == 0 || pos.Row == height-1
}

// borderPosition picks uniformly among the 2*width + 2*(height-2) ring cells. The
// ring is enumerated as top/bottom pairs per column, then left/right pairs per
// inner row.
func borderPosition(width, height int, rng *rand.Rand) CellPosition {
	i := rng.Intn(2*width + 2*(height-2))
	if i < 2*width {
		pos := CellPosition{Col: i / 2}
		if i%2 == 1 {
			pos.Row = height - 1
		}
		return pos
	}

	j := i - 2*width
	pos := CellPosition{Row: 1 + j/2}
	if j%2 == 1 {
		pos.Col = width - 1
	}
	return pos
}

// interiorPosition picks uniformly among the cells not on the outer ring.
func interiorPosition(width, height int, rng *rand.Rand) CellPosition {
	inner := width - 2
	i := rng.Intn(inner * (height - 2))
	return CellPosition{Row: 1 + i/inner, Col: 1 + i%inner}
}
