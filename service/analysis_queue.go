package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix       = "mazestats"
	defaultPollInterval = 500 * time.Millisecond
	defaultBatchSize    = 1
	queueKeyFmt         = "%s:queue:analyses"
)

var (
	ErrJobNotFound = errors.New("analysis job not found")
)

// QueueOptions tunes the analysis queue.
type QueueOptions struct {
	Prefix       string        // Key prefix of the sorted queue
	PollInterval time.Duration // Wait between polls of an empty queue
	BatchSize    int64         // Jobs popped per poll
}

// QueueConfig holds the collaborators of an AnalysisQueue.
type QueueConfig struct {
	SortedQueue i.SortedQueue
	Encoder     i.JobEncoder
	Repo        i.ReportRepo
	Analyzer    i.Analyzer
	Logger      i.Logger
	Options     *QueueOptions
}

// AnalysisQueue accepts analysis requests, queues them in a sorted queue scored by
// arrival time and runs them in the background, storing every report in the repo.
type AnalysisQueue struct {
	sortedQueue i.SortedQueue
	encoder     i.JobEncoder
	repo        i.ReportRepo
	analyzer    i.Analyzer
	logger      i.Logger
	opts        *QueueOptions
}

var _ i.AnalysisQueue = &AnalysisQueue{}

// NewAnalysisQueue creates an AnalysisQueue, filling unset options with defaults.
func NewAnalysisQueue(c *QueueConfig) (*AnalysisQueue, error) {
	if c == nil || c.SortedQueue == nil || c.Encoder == nil || c.Repo == nil || c.Analyzer == nil || c.Logger == nil {
		return nil, errors.New("analysis queue requires a sorted queue, encoder, repo, analyzer and logger")
	}

	opts := c.Options
	if opts == nil {
		opts = &QueueOptions{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	return &AnalysisQueue{
		sortedQueue: c.SortedQueue,
		encoder:     c.Encoder,
		repo:        c.Repo,
		analyzer:    c.Analyzer,
		logger:      c.Logger,
		opts:        opts,
	}, nil
}

// Push validates cfg, stores a queued report and enqueues the job.
func (q *AnalysisQueue) Push(ctx context.Context, cfg domain.AnalysisConfig) (uuid.UUID, error) {
	if err := cfg.Validate(); err != nil {
		return uuid.Nil, err
	}

	job := domain.AnalysisJob{ID: uuid.New(), Config: cfg, QueuedAt: time.Now().UTC()}
	if err := q.repo.Save(ctx, domain.NewQueuedReport(job.ID, cfg)); err != nil {
		q.logger.Error(fmt.Sprintf("Failed to store queued report: %s", err))
		return uuid.Nil, err
	}

	payload, err := q.encoder.MarshalJob(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding job: %w", err)
	}

	score := float64(job.QueuedAt.UnixNano())
	if err := q.sortedQueue.Enqueue(ctx, q.queueKey(), score, payload); err != nil {
		q.logger.Error(fmt.Sprintf("Failed to enqueue job: %s", err))
		return uuid.Nil, err
	}

	jobsTotal.WithLabelValues("queued").Inc()
	q.logger.Info(fmt.Sprintf("Job queued: ID=%s %dx%d samples=%d", job.ID, cfg.Width, cfg.Height, cfg.Samples))
	return job.ID, nil
}

// Report returns the stored report of a job.
func (q *AnalysisQueue) Report(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	report, err := q.repo.ByID(ctx, id)
	if errors.Is(err, domain.ErrReportNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return report, err
}

// Pending returns the number of jobs waiting in the queue.
func (q *AnalysisQueue) Pending(ctx context.Context) int64 {
	return q.sortedQueue.Count(ctx, q.queueKey())
}

// Work polls the queue and runs jobs until ctx is cancelled.
func (q *AnalysisQueue) Work(ctx context.Context) error {
	ticker := time.NewTicker(q.opts.PollInterval)
	defer ticker.Stop()

	q.logger.Info("Analysis worker started")
	for {
		// Drain without waiting while jobs keep arriving.
		for q.ProcessBatch(ctx) > 0 {
			if ctx.Err() != nil {
				break
			}
		}

		select {
		case <-ctx.Done():
			q.logger.Info("Analysis worker stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ProcessBatch pops up to BatchSize jobs and runs them, returning how many were popped.
func (q *AnalysisQueue) ProcessBatch(ctx context.Context) int {
	payloads, err := q.sortedQueue.DequeTops(ctx, q.queueKey(), q.opts.BatchSize)
	if err != nil {
		q.logger.Error(fmt.Sprintf("obtaining queued jobs: %s", err))
		return 0
	}

	for _, payload := range payloads {
		job, err := q.encoder.UnmarshalJob(payload)
		if err != nil {
			jobsTotal.WithLabelValues("malformed").Inc()
			q.logger.Warning(fmt.Sprintf("Dropping malformed job: %s", err))
			continue
		}
		q.runJob(ctx, job)
	}

	return len(payloads)
}

// runJob runs one job and stores its report, marking it failed on error.
func (q *AnalysisQueue) runJob(ctx context.Context, job domain.AnalysisJob) {
	q.logger.Info(fmt.Sprintf("Running job: ID=%s", job.ID))

	report, err := q.analyzer.Run(ctx, job.Config)
	if err != nil {
		jobsTotal.WithLabelValues("failed").Inc()
		q.logger.Error(fmt.Sprintf("Job failed: ID=%s: %s", job.ID, err))
		report = domain.NewQueuedReport(job.ID, job.Config)
		report.Status = domain.StatusFailed
		report.Error = err.Error()
	} else {
		jobsTotal.WithLabelValues("done").Inc()
	}

	report.ID = job.ID
	report.CreatedAt = job.QueuedAt
	report.UpdatedAt = time.Now().UTC()

	// A cancelled worker still records the outcome of the job it was running.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := q.repo.Save(saveCtx, report); err != nil {
		q.logger.Error(fmt.Sprintf("Failed to store report: ID=%s: %s", job.ID, err))
	}
}

func (q *AnalysisQueue) queueKey() string {
	return fmt.Sprintf(queueKeyFmt, q.opts.Prefix)
}
