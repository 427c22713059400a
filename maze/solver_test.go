package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidPath checks that consecutive cells are adjacent and connected.
func assertValidPath(t *testing.T, m *Maze, path []CellPosition) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, m.Start(), path[0])
	assert.Equal(t, m.End(), path[len(path)-1])

	for i := 1; i < len(path); i++ {
		connected := false
		for _, d := range Directions {
			if path[i-1].Step(d) == path[i] {
				connected = m.IsOpen(path[i-1], d) && m.IsOpen(path[i], d.Opposite())
			}
		}
		assert.True(t, connected, "%s -> %s", path[i-1], path[i])
	}
}

func TestFindPath(t *testing.T) {
	t.Run("straight corridor", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East},
			passage{1, 0, East},
		)
		path, err := FindPath(m)
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{at(0, 0), at(1, 0), at(2, 0)}, path)
	})

	t.Run("generated mazes yield valid deterministic paths", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 200; i++ {
			m, _, err := Generate(9, 7, rng)
			require.NoError(t, err)

			path, err := FindPath(m)
			require.NoError(t, err)
			assertValidPath(t, m, path)

			again, err := FindPath(m)
			require.NoError(t, err)
			assert.Equal(t, path, again)

			// A tree path never revisits a cell.
			seen := map[CellPosition]bool{}
			for _, pos := range path {
				assert.False(t, seen[pos])
				seen[pos] = true
			}
		}
	})

	t.Run("coinciding endpoints", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0), passage{0, 0, East})
		path, err := FindPathBetween(m, at(1, 1), at(1, 1))
		assert.ErrorIs(t, err, ErrDegenerateEndpoints)
		assert.Empty(t, path)
	})

	t.Run("unreachable end", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 2), passage{0, 0, East})
		path, err := FindPath(m)
		assert.ErrorIs(t, err, ErrUnreachable)
		assert.Empty(t, path)
	})

	t.Run("out of bounds", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 2))
		_, err := FindPathBetween(m, at(0, 0), at(5, 5))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}
