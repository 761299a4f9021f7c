package job

import (
	"time"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
)

// Job is a screening position with its requirement template. Candidates are
// always scored against exactly one job.
type Job struct {
	ID           kernel.JobID               `db:"id" json:"id"`
	Title        string                     `db:"title" json:"title"`
	Department   string                     `db:"department" json:"department,omitempty"`
	Requirements scoring.JobRequirementSpec `db:"requirements" json:"requirements"`
	IsActive     bool                       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time                  `db:"updated_at" json:"updated_at"`
}

// Deactivate marks the job as no longer accepting candidates.
func (j *Job) Deactivate() {
	j.IsActive = false
	j.UpdatedAt = time.Now()
}

// Activate marks the job as accepting candidates.
func (j *Job) Activate() {
	j.IsActive = true
	j.UpdatedAt = time.Now()
}

// UpdateDetails applies non-empty fields to the job.
func (j *Job) UpdateDetails(title, department string, requirements *scoring.JobRequirementSpec) {
	if title != "" {
		j.Title = title
	}
	if department != "" {
		j.Department = department
	}
	if requirements != nil {
		j.Requirements = *requirements
	}
	j.UpdatedAt = time.Now()
}
