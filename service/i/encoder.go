package i

import "github.com/beka-birhanu/vinom-mazestats/domain"

// JobEncoder serializes queued analysis jobs.
type JobEncoder interface {
	MarshalJob(domain.AnalysisJob) ([]byte, error)
	UnmarshalJob([]byte) (domain.AnalysisJob, error)
}
