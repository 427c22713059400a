package pb

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Job payload field names.
const (
	fieldID       = "id"
	fieldWidth    = "width"
	fieldHeight   = "height"
	fieldSamples  = "samples"
	fieldWorkers  = "workers"
	fieldSeed     = "seed"
	fieldQueuedAt = "queued_at"
)

var errMissingField = errors.New("job payload is missing a field")

// Protobuf encodes analysis jobs as protobuf Struct messages.
// Implements i.JobEncoder.
type Protobuf struct{}

var _ i.JobEncoder = &Protobuf{}

// MarshalJob implements i.JobEncoder. Protobuf numbers are doubles, so the seed and
// the queue time are carried as decimal strings to keep every bit.
func (p *Protobuf) MarshalJob(job domain.AnalysisJob) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		fieldID:       job.ID.String(),
		fieldWidth:    job.Config.Width,
		fieldHeight:   job.Config.Height,
		fieldSamples:  job.Config.Samples,
		fieldWorkers:  job.Config.Workers,
		fieldSeed:     strconv.FormatInt(job.Config.Seed, 10),
		fieldQueuedAt: strconv.FormatInt(job.QueuedAt.UnixNano(), 10),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// UnmarshalJob implements i.JobEncoder.
func (p *Protobuf) UnmarshalJob(data []byte) (domain.AnalysisJob, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(data, s); err != nil {
		return domain.AnalysisJob{}, err
	}
	fields := s.GetFields()

	idStr, err := stringField(fields, fieldID)
	if err != nil {
		return domain.AnalysisJob{}, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.AnalysisJob{}, fmt.Errorf("job id: %w", err)
	}

	seed, err := int64Field(fields, fieldSeed)
	if err != nil {
		return domain.AnalysisJob{}, err
	}
	queuedAt, err := int64Field(fields, fieldQueuedAt)
	if err != nil {
		return domain.AnalysisJob{}, err
	}

	job := domain.AnalysisJob{
		ID:       id,
		QueuedAt: time.Unix(0, queuedAt).UTC(),
		Config:   domain.AnalysisConfig{Seed: seed},
	}
	for name, dst := range map[string]*int{
		fieldWidth:   &job.Config.Width,
		fieldHeight:  &job.Config.Height,
		fieldSamples: &job.Config.Samples,
		fieldWorkers: &job.Config.Workers,
	} {
		if *dst, err = intField(fields, name); err != nil {
			return domain.AnalysisJob{}, err
		}
	}

	return job, nil
}

func stringField(fields map[string]*structpb.Value, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", errMissingField, name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("job field %s is not a string", name)
	}
	return s.StringValue, nil
}

func int64Field(fields map[string]*structpb.Value, name string) (int64, error) {
	s, err := stringField(fields, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("job field %s: %w", name, err)
	}
	return n, nil
}

func intField(fields map[string]*structpb.Value, name string) (int, error) {
	v, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errMissingField, name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("job field %s is not a number", name)
	}
	return int(n.NumberValue), nil
}
