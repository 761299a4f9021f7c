package job

import (
	"context"

	"github.com/talentshift/ats/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves jobs with pagination, optionally only active ones
	List(ctx context.Context, activeOnly bool, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Count counts all jobs
	Count(ctx context.Context) (int64, error)
}
