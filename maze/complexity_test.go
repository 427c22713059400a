package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidBranch(t *testing.T) {
	t.Run("dead end is invalid", func(t *testing.T) {
		m := carved(t, 3, 2, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South},
		)
		assert.False(t, NewClassifier().IsValidBranch(m, at(1, 0), South))
	})

	t.Run("fork is valid", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South}, passage{1, 1, East}, passage{1, 1, West},
		)
		assert.True(t, NewClassifier().IsValidBranch(m, at(1, 0), South))
	})

	t.Run("corridor longer than the lookahead is valid", func(t *testing.T) {
		m := carved(t, 3, 5, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South}, passage{1, 1, South}, passage{1, 2, South}, passage{1, 3, South},
		)
		var checked []CheckedCell
		c := NewClassifier(WithObserver(func(cc CheckedCell) { checked = append(checked, cc) }))

		assert.True(t, c.IsValidBranch(m, at(1, 0), South))
		assert.Equal(t, []CheckedCell{
			{Pos: at(1, 1), Direction: South},
			{Pos: at(1, 2), Direction: South},
			{Pos: at(1, 3), Direction: South},
			{Pos: at(1, 4), Direction: South},
		}, checked)
	})

	t.Run("short corridor into a dead end is invalid", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South}, passage{1, 1, South},
		)
		checked := 0
		c := NewClassifier(WithObserver(func(CheckedCell) { checked++ }))

		assert.False(t, c.IsValidBranch(m, at(1, 0), South))
		assert.Equal(t, 2, checked)
	})

	t.Run("turning corridor is followed, not counted as a bend", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South}, passage{1, 1, East},
		)
		assert.False(t, NewClassifier().IsValidBranch(m, at(1, 0), South))
	})

	t.Run("turning corridor into a fork is valid", func(t *testing.T) {
		m := carved(t, 4, 3, at(0, 0), at(3, 0),
			passage{0, 0, East}, passage{1, 0, East}, passage{2, 0, East},
			passage{1, 0, South}, passage{1, 1, East}, passage{2, 1, East}, passage{2, 1, South},
		)
		assert.True(t, NewClassifier().IsValidBranch(m, at(1, 0), South))
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("straight corridor has no intersections", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
		)
		c, err := NewClassifier().Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 3, c.PathLength)
		assert.Equal(t, 0, c.Count)
		assert.Empty(t, c.Intersections)
		assert.Empty(t, c.BranchArrows)
	})

	t.Run("dead-end branch is not an intersection", func(t *testing.T) {
		m := carved(t, 3, 2, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South},
		)
		c, err := NewClassifier().Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Count)
	})

	t.Run("branch into a fork is an intersection", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{1, 0, South}, passage{1, 1, East}, passage{1, 1, West},
		)
		c, err := NewClassifier().Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, []Intersection{{Pos: at(1, 0), Number: 1}}, c.Intersections)
		assert.Equal(t, []BranchArrow{{Pos: at(1, 1), Direction: South, Valid: true}}, c.BranchArrows)
	})

	t.Run("start cell needs only two open sides", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{0, 0, South}, passage{0, 1, South}, passage{0, 1, East},
		)
		c, err := NewClassifier().Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, at(0, 0), c.Intersections[0].Pos)
	})

	t.Run("end cell is not examined", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 0),
			passage{0, 0, East}, passage{1, 0, East},
			passage{2, 0, South}, passage{2, 1, South}, passage{2, 1, West},
		)
		c, err := NewClassifier().Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Count)
	})

	t.Run("arrows start after the first valid branch", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 1), at(2, 1),
			passage{0, 1, East}, passage{1, 1, East},
			passage{1, 1, North},
			passage{1, 1, South}, passage{1, 2, East}, passage{1, 2, West},
		)
		c, err := NewClassifier().Analyze(m)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, []BranchArrow{{Pos: at(1, 2), Direction: South, Valid: true}}, c.BranchArrows)
	})

	t.Run("unreachable end", func(t *testing.T) {
		m := carved(t, 3, 3, at(0, 0), at(2, 2), passage{0, 0, East})
		_, err := NewClassifier().Analyze(m)
		assert.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("generated mazes", func(t *testing.T) {
		rng := rand.New(rand.NewSource(21))
		classifier := NewClassifier()
		for i := 0; i < 300; i++ {
			m, _, err := Generate(11, 11, rng)
			require.NoError(t, err)

			c, err := classifier.Analyze(m)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, c.PathLength, 2)
			assert.Equal(t, len(c.Path), c.PathLength)
			assert.LessOrEqual(t, c.Count, c.PathLength-1)
			assert.Len(t, c.Intersections, c.Count)
			for n, in := range c.Intersections {
				assert.Equal(t, n+1, in.Number)
			}
		}
	})
}

func TestAnalyzePath(t *testing.T) {
	m := carved(t, 3, 3, at(0, 0), at(2, 0), passage{0, 0, East}, passage{1, 0, East})

	_, err := NewClassifier().AnalyzePath(m, nil)
	assert.Error(t, err)

	_, err = NewClassifier().AnalyzePath(m, []CellPosition{at(0, 0), at(3, 0)})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	c, err := NewClassifier().AnalyzePath(m, []CellPosition{at(0, 0)})
	require.NoError(t, err)
	assert.Equal(t, 0, c.PathLength)
}
