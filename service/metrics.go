package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// samplesTotal counts recorded samples by carving algorithm
	samplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazestats_samples_total",
		Help: "Total maze samples recorded by carving algorithm",
	}, []string{"algorithm"})

	// regeneratedTotal counts discarded degenerate mazes
	regeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mazestats_regenerated_samples_total",
		Help: "Total mazes discarded because start and end coincided",
	})

	// analysesTotal counts analysis runs by result
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazestats_analyses_total",
		Help: "Total analysis runs by result",
	}, []string{"result"})

	// analysisDuration tracks analysis run latency
	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mazestats_analysis_duration_seconds",
		Help:    "Analysis run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
	})

	// jobsTotal counts queued jobs by outcome
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazestats_jobs_total",
		Help: "Total analysis jobs by outcome",
	}, []string{"result"})
)
