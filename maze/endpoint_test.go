package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickRegion(t *testing.T) {
	const draws = 100000
	rng := rand.New(rand.NewSource(2024))
	counts := map[endpointRegion]int{}

	for i := 0; i < draws; i++ {
		counts[pickRegion(rng)]++
	}

	assert.InDelta(t, 0.66, float64(counts[regionBorder])/draws, 0.01)
	assert.InDelta(t, 0.31, float64(counts[regionInterior])/draws, 0.01)
	assert.InDelta(t, 0.03, float64(counts[regionAny])/draws, 0.005)
}

func TestPickPosition(t *testing.T) {
	t.Run("border and interior fractions", func(t *testing.T) {
		const (
			draws  = 100000
			width  = 11
			height = 11
		)
		rng := rand.New(rand.NewSource(99))
		border := 0

		for i := 0; i < draws; i++ {
			pos := PickPosition(width, height, rng)
			if IsBorder(pos, width, height) {
				border++
			}
		}

		// The whole-grid bucket adds its share of ring cells to the border picks.
		ring := float64(2*width + 2*(height-2))
		all := float64(width * height)
		wantBorder := BorderProbability + (1-BorderProbability-InteriorProbability)*ring/all

		assert.InDelta(t, wantBorder, float64(border)/draws, 0.006)
		assert.InDelta(t, 1-wantBorder, float64(draws-border)/draws, 0.006)
	})

	t.Run("covers every ring cell", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		seen := map[CellPosition]bool{}
		for i := 0; i < 5000; i++ {
			seen[borderPosition(4, 3, rng)] = true
		}

		want := []CellPosition{
			at(0, 0), at(1, 0), at(2, 0), at(3, 0),
			at(0, 2), at(1, 2), at(2, 2), at(3, 2),
			at(0, 1), at(3, 1),
		}
		assert.Len(t, seen, len(want))
		for _, pos := range want {
			assert.True(t, seen[pos], pos.String())
		}
	})

	t.Run("interior never touches the ring", func(t *testing.T) {
		rng := rand.New(rand.NewSource(6))
		for i := 0; i < 2000; i++ {
			assert.False(t, IsBorder(interiorPosition(5, 4, rng), 5, 4))
		}
	})

	t.Run("grids without interior stay in bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(8))
		for i := 0; i < 5000; i++ {
			pos := PickPosition(2, 6, rng)
			assert.True(t, pos.Col >= 0 && pos.Col < 2 && pos.Row >= 0 && pos.Row < 6)
			pos = PickPosition(6, 2, rng)
			assert.True(t, pos.Col >= 0 && pos.Col < 6 && pos.Row >= 0 && pos.Row < 2)
		}
	})
}

func TestPickEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		start, end := PickEndpoints(2, 2, rng)
		assert.NotEqual(t, start, end)
	}
}
