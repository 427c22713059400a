package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/google/uuid"
)

type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type scoredMember struct {
	score  float64
	member []byte
}

// memoryQueue is an in-process SortedQueue.
type memoryQueue struct {
	mu     sync.Mutex
	queues map[string][]scoredMember
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{queues: make(map[string][]scoredMember)}
}

func (q *memoryQueue) Enqueue(_ context.Context, key string, score float64, member []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	members := append(q.queues[key], scoredMember{score: score, member: member})
	sort.SliceStable(members, func(a, b int) bool { return members[a].score < members[b].score })
	q.queues[key] = members
	return nil
}

func (q *memoryQueue) DequeTops(_ context.Context, key string, amount int64) ([][]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	members := q.queues[key]
	n := min(int(amount), len(members))
	tops := make([][]byte, n)
	for k := range tops {
		tops[k] = members[k].member
	}
	q.queues[key] = members[n:]
	return tops, nil
}

func (q *memoryQueue) Count(_ context.Context, key string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.queues[key]))
}

// memoryRepo is an in-process ReportRepo.
type memoryRepo struct {
	mu      sync.Mutex
	reports map[uuid.UUID]domain.Report
	saves   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{reports: make(map[uuid.UUID]domain.Report)}
}

func (r *memoryRepo) Save(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.ID] = *report
	r.saves++
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return &report, nil
}

type jsonEncoder struct{}

func (jsonEncoder) MarshalJob(job domain.AnalysisJob) ([]byte, error) {
	return json.Marshal(job)
}

func (jsonEncoder) UnmarshalJob(data []byte) (domain.AnalysisJob, error) {
	var job domain.AnalysisJob
	err := json.Unmarshal(data, &job)
	return job, err
}

// stubAnalyzer returns a fixed report or error.
type stubAnalyzer struct {
	mu      sync.Mutex
	err     error
	configs []domain.AnalysisConfig
}

func (a *stubAnalyzer) Run(_ context.Context, cfg domain.AnalysisConfig) (*domain.Report, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configs = append(a.configs, cfg)
	if a.err != nil {
		return nil, a.err
	}
	return &domain.Report{
		ID:         uuid.New(),
		Status:     domain.StatusDone,
		Config:     cfg,
		PathLength: domain.Distribution{Percentiles: []domain.PercentileValue{{Percent: 100, Value: 7}}},
	}, nil
}
