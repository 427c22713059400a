// Package report renders analysis reports for terminals.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-mazestats/domain"
)

// WriteText writes the percentile table of both figures, e.g.
// "80% of mazes have path length <= 31".
func WriteText(w io.Writer, r *domain.Report) error {
	if r == nil {
		return errors.New("nil report")
	}

	var b strings.Builder
	cfg := r.Config
	fmt.Fprintf(&b, "Path Length Percentiles (%d Mazes, %dx%d):\n", cfg.Samples, cfg.Width, cfg.Height)
	writePercentiles(&b, r.PathLength, "path length")

	fmt.Fprintf(&b, "\nIntersection Count Percentiles (%d Mazes, %dx%d):\n", cfg.Samples, cfg.Width, cfg.Height)
	writePercentiles(&b, r.Intersections, "intersection count")

	fmt.Fprintf(&b, "\nMean path length %.2f (sd %.2f), mean intersection count %.2f (sd %.2f)\n",
		r.PathLength.Mean, r.PathLength.StdDev, r.Intersections.Mean, r.Intersections.StdDev)
	if len(r.Algorithms) > 0 {
		fmt.Fprintf(&b, "Algorithms: backtracking %d, prim %d; regenerated samples %d\n",
			r.Algorithms["backtracking"], r.Algorithms["prim"], r.Regenerated)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writePercentiles(b *strings.Builder, d domain.Distribution, label string) {
	for _, p := range d.Percentiles {
		fmt.Fprintf(b, "%g%% of mazes have %s <= %d\n", p.Percent, label, p.Value)
	}
}
