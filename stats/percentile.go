// Package stats computes the distribution figures reported for a maze sample.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	mstats "github.com/montanaflynn/stats"
)

// DefaultRanks are the percentile ranks reported for every analysis.
var DefaultRanks = []float64{20, 40, 60, 80, 100}

var (
	ErrEmptySample = errors.New("sample is empty")
	ErrInvalidRank = errors.New("percentile rank must be within [0, 100]")
)

// Summary describes the shape of an integer sample.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    int
	Max    int
}

// NearestRank returns, for every rank, the sample value at the sorted index closest
// to rank*(n-1)/100. Values are never interpolated; halfway indexes round to even.
func NearestRank(values []int, ranks []float64) ([]int, error) {
	if len(values) == 0 {
		return nil, ErrEmptySample
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	result := make([]int, len(ranks))
	for i, rank := range ranks {
		if rank < 0 || rank > 100 || math.IsNaN(rank) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRank, rank)
		}
		idx := int(math.RoundToEven(rank / 100 * float64(len(sorted)-1)))
		result[i] = sorted[idx]
	}
	return result, nil
}

// Summarize computes mean, median, population standard deviation and range.
func Summarize(values []int) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}

	data := mstats.LoadRawData(values)

	mean, err := mstats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	median, err := mstats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	stdDev, err := mstats.StandardDeviation(data)
	if err != nil {
		return Summary{}, fmt.Errorf("standard deviation: %w", err)
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    slices.Min(values),
		Max:    slices.Max(values),
	}, nil
}
