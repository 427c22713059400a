package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/maze"
	"github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/beka-birhanu/vinom-mazestats/stats"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxRegenerations = 1000
	cancelCheckInterval     = 64
)

var (
	ErrInvariantViolation   = errors.New("maze invariant violated")
	ErrTooManyRegenerations = errors.New("too many degenerate mazes in a row")
)

// GenerateFunc builds one maze from a random source.
type GenerateFunc func(width, height int, rng *rand.Rand) (*maze.Maze, maze.Algorithm, error)

// AnalyzerOptions configures an Analyzer.
type AnalyzerOptions struct {
	// Ranks are the percentile ranks reported. Defaults to stats.DefaultRanks.
	Ranks []float64

	// MaxRegenerations bounds how many degenerate mazes a single sample may discard.
	MaxRegenerations int

	// Generate replaces maze.Generate.
	Generate GenerateFunc

	// Observer receives every cell the branch classifier inspects. Calls from
	// parallel workers are serialized.
	Observer func(maze.CheckedCell)
}

// Analyzer repeatedly generates mazes and summarises their path lengths and
// intersection counts.
type Analyzer struct {
	logger     i.Logger
	classifier *maze.Classifier
	opts       *AnalyzerOptions
}

var _ i.Analyzer = &Analyzer{}

// shard is the output of one sample worker.
type shard struct {
	lengths     []int
	counts      []int
	algorithms  map[string]int
	regenerated int
}

// NewAnalyzer creates an Analyzer, filling unset options with defaults.
func NewAnalyzer(logger i.Logger, opts *AnalyzerOptions) (*Analyzer, error) {
	if logger == nil {
		return nil, errors.New("analyzer logger is required")
	}

	if opts == nil {
		opts = &AnalyzerOptions{}
	}

	if len(opts.Ranks) == 0 {
		opts.Ranks = stats.DefaultRanks
	}

	if opts.MaxRegenerations <= 0 {
		opts.MaxRegenerations = defaultMaxRegenerations
	}

	if opts.Generate == nil {
		opts.Generate = maze.Generate
	}

	var classifierOpts []maze.ClassifierOption
	if opts.Observer != nil {
		observe := opts.Observer
		var mu sync.Mutex
		classifierOpts = append(classifierOpts, maze.WithObserver(func(c maze.CheckedCell) {
			mu.Lock()
			defer mu.Unlock()
			observe(c)
		}))
	}

	return &Analyzer{
		logger:     logger,
		classifier: maze.NewClassifier(classifierOpts...),
		opts:       opts,
	}, nil
}

// Run validates cfg and collects cfg.Samples samples. Worker k draws from its own
// source seeded with cfg.Seed+k, so a single worker reproduces one sequential
// stream and any fixed worker count is reproducible for a seed.
func (a *Analyzer) Run(ctx context.Context, cfg domain.AnalysisConfig) (*domain.Report, error) {
	if err := cfg.Validate(); err != nil {
		analysesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	started := time.Now()
	a.logger.Info(fmt.Sprintf("Starting analysis: %dx%d samples=%d workers=%d seed=%d", cfg.Width, cfg.Height, cfg.Samples, cfg.Workers, cfg.Seed))

	workers := min(cfg.Workers, cfg.Samples)
	shards := make([]shard, workers)

	g, gctx := errgroup.WithContext(ctx)
	for k := range shards {
		k := k
		count := cfg.Samples / workers
		if k < cfg.Samples%workers {
			count++
		}
		g.Go(func() error {
			return a.runShard(gctx, &shards[k], cfg, cfg.Seed+int64(k), count)
		})
	}

	if err := g.Wait(); err != nil {
		analysesTotal.WithLabelValues("failed").Inc()
		a.logger.Error(fmt.Sprintf("Analysis failed: %s", err))
		return nil, err
	}

	report, err := a.buildReport(cfg, shards)
	if err != nil {
		analysesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	report.Duration = time.Since(started)
	analysisDuration.Observe(report.Duration.Seconds())
	analysesTotal.WithLabelValues("done").Inc()
	a.logger.Info(fmt.Sprintf("Analysis finished in %s: regenerated=%d", report.Duration, report.Regenerated))
	return report, nil
}

// Sample generates one maze and extracts its path length and intersection count,
// discarding degenerate mazes. It returns how many mazes were discarded.
func (a *Analyzer) Sample(rng *rand.Rand, width, height int) (domain.Sample, int, error) {
	regenerated := 0
	for {
		m, algorithm, err := a.opts.Generate(width, height, rng)
		if err == nil {
			var c *maze.Complexity
			c, err = a.classifier.Analyze(m)
			if err == nil && c.PathLength == 0 {
				err = maze.ErrDegenerateEndpoints
			}
			if err == nil {
				return domain.Sample{
					PathLength:    c.PathLength,
					Intersections: c.Count,
					Algorithm:     algorithm.String(),
				}, regenerated, nil
			}
		}

		switch {
		case errors.Is(err, maze.ErrDegenerateEndpoints):
			regenerated++
			if regenerated > a.opts.MaxRegenerations {
				return domain.Sample{}, regenerated, fmt.Errorf("%w: %d", ErrTooManyRegenerations, regenerated)
			}
		case errors.Is(err, maze.ErrUnreachable):
			return domain.Sample{}, regenerated, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		default:
			return domain.Sample{}, regenerated, err
		}
	}
}

// runShard collects count samples into s.
func (a *Analyzer) runShard(ctx context.Context, s *shard, cfg domain.AnalysisConfig, seed int64, count int) error {
	rng := rand.New(rand.NewSource(seed))
	s.lengths = make([]int, 0, count)
	s.counts = make([]int, 0, count)
	s.algorithms = make(map[string]int, len(maze.Algorithms))

	for n := 0; n < count; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		sample, regenerated, err := a.Sample(rng, cfg.Width, cfg.Height)
		s.regenerated += regenerated
		regeneratedTotal.Add(float64(regenerated))
		if err != nil {
			return err
		}

		s.lengths = append(s.lengths, sample.PathLength)
		s.counts = append(s.counts, sample.Intersections)
		s.algorithms[sample.Algorithm]++
		samplesTotal.WithLabelValues(sample.Algorithm).Inc()
	}

	return nil
}

// buildReport concatenates the shards in worker order and summarises them.
func (a *Analyzer) buildReport(cfg domain.AnalysisConfig, shards []shard) (*domain.Report, error) {
	lengths := make([]int, 0, cfg.Samples)
	counts := make([]int, 0, cfg.Samples)
	algorithms := make(map[string]int, len(maze.Algorithms))
	regenerated := 0

	for _, s := range shards {
		lengths = append(lengths, s.lengths...)
		counts = append(counts, s.counts...)
		for algorithm, n := range s.algorithms {
			algorithms[algorithm] += n
		}
		regenerated += s.regenerated
	}

	pathLength, err := a.distribution(lengths)
	if err != nil {
		return nil, fmt.Errorf("path length distribution: %w", err)
	}
	intersections, err := a.distribution(counts)
	if err != nil {
		return nil, fmt.Errorf("intersection distribution: %w", err)
	}

	now := time.Now().UTC()
	return &domain.Report{
		ID:            uuid.New(),
		Status:        domain.StatusDone,
		Config:        cfg,
		PathLength:    pathLength,
		Intersections: intersections,
		Algorithms:    algorithms,
		Regenerated:   regenerated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (a *Analyzer) distribution(values []int) (domain.Distribution, error) {
	ranked, err := stats.NearestRank(values, a.opts.Ranks)
	if err != nil {
		return domain.Distribution{}, err
	}
	summary, err := stats.Summarize(values)
	if err != nil {
		return domain.Distribution{}, err
	}

	percentiles := make([]domain.PercentileValue, len(ranked))
	for k, value := range ranked {
		percentiles[k] = domain.PercentileValue{Percent: a.opts.Ranks[k], Value: value}
	}

	return domain.Distribution{
		Percentiles: percentiles,
		Mean:        summary.Mean,
		Median:      summary.Median,
		StdDev:      summary.StdDev,
		Min:         summary.Min,
		Max:         summary.Max,
	}, nil
}
