package candidate

import (
	"context"
	"time"

	"github.com/talentshift/ats/pkg/kernel"
)

type Repository interface {
	// Create creates a new candidate record
	Create(ctx context.Context, candidate *Candidate) error

	// Update updates an existing candidate
	Update(ctx context.Context, id kernel.CandidateID, candidate *Candidate) error

	// GetByID retrieves a candidate by ID
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// Delete deletes a candidate by ID
	Delete(ctx context.Context, id kernel.CandidateID) error

	// List retrieves candidates matching the filters, ordered by total score
	// descending
	List(ctx context.Context, req ListCandidatesRequest) (*PaginatedCandidatesResponse, error)

	// ListAll retrieves every candidate for a job (no pagination), ordered by
	// total score descending. Used by stats, analytics and export.
	ListAll(ctx context.Context, jobID kernel.JobID) ([]Candidate, error)

	// UpdatePipelineStatus updates only the pipeline status
	UpdatePipelineStatus(ctx context.Context, id kernel.CandidateID, status PipelineStatus) error

	// Count counts candidates, optionally for one job
	Count(ctx context.Context, jobID kernel.JobID) (int64, error)
}

// ScoringJob is the queue payload for background résumé processing.
type ScoringJob struct {
	ID           string       `json:"id"`
	JobID        kernel.JobID `json:"job_id"`
	ResumePath   string       `json:"resume_path"`
	Filename     string       `json:"filename"`
	ContentType  string       `json:"content_type"`
	AttemptCount int          `json:"attempt_count"`
	MaxAttempts  int          `json:"max_attempts"`
	EnqueuedAt   time.Time    `json:"enqueued_at"`
}

// ScoringQueue defines the queue operations for batch processing.
type ScoringQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, job *ScoringJob) error

	// Dequeue gets a job from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a job for later processing (for retries)
	EnqueueDelayed(ctx context.Context, job *ScoringJob, delay time.Duration) error

	// MoveDelayedToReady moves delayed jobs that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// Size returns the number of ready jobs in the queue
	Size(ctx context.Context) (int64, error)

	// DelayedSize returns the number of delayed jobs
	DelayedSize(ctx context.Context) (int64, error)
}
