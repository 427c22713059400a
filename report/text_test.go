package report

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	r := &domain.Report{
		Config: domain.AnalysisConfig{Width: 11, Height: 11, Samples: 5, Workers: 1},
		PathLength: domain.Distribution{
			Percentiles: []domain.PercentileValue{{Percent: 20, Value: 9}, {Percent: 100, Value: 41}},
			Mean:        20,
		},
		Intersections: domain.Distribution{
			Percentiles: []domain.PercentileValue{{Percent: 20, Value: 1}, {Percent: 100, Value: 6}},
		},
		Algorithms:  map[string]int{"backtracking": 3, "prim": 2},
		Regenerated: 0,
	}

	var out strings.Builder
	require.NoError(t, WriteText(&out, r))

	text := out.String()
	assert.Contains(t, text, "Path Length Percentiles (5 Mazes, 11x11):")
	assert.Contains(t, text, "20% of mazes have path length <= 9")
	assert.Contains(t, text, "100% of mazes have path length <= 41")
	assert.Contains(t, text, "Intersection Count Percentiles (5 Mazes, 11x11):")
	assert.Contains(t, text, "100% of mazes have intersection count <= 6")
	assert.Contains(t, text, "backtracking 3, prim 2")

	assert.Error(t, WriteText(&out, nil))
}
