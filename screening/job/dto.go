package job

import (
	"time"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title        string                     `json:"title" validate:"required"`
	Department   string                     `json:"department,omitempty"`
	Requirements scoring.JobRequirementSpec `json:"requirements"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title        string                      `json:"title,omitempty"`
	Department   string                      `json:"department,omitempty"`
	Requirements *scoring.JobRequirementSpec `json:"requirements,omitempty"`
	IsActive     *bool                       `json:"is_active,omitempty"`
}

// ListJobsRequest - DTO for listing jobs
type ListJobsRequest struct {
	ActiveOnly bool                     `json:"active_only,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID           kernel.JobID               `json:"id"`
	Title        string                     `json:"title"`
	Department   string                     `json:"department,omitempty"`
	Requirements scoring.JobRequirementSpec `json:"requirements"`
	IsActive     bool                       `json:"is_active"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// ToResponse converts the entity to its response DTO.
func ToResponse(j *Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Department:   j.Department,
		Requirements: j.Requirements,
		IsActive:     j.IsActive,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
