package candidate

import (
	"time"

	"github.com/talentshift/ats/internal/cvparse"
	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
)

// PipelineStatus tracks where a candidate sits in the recruiter's pipeline.
// It is set by recruiters, unlike the qualification tier which is computed.
type PipelineStatus string

const (
	PipelineReview      PipelineStatus = "review"
	PipelineShortlisted PipelineStatus = "shortlisted"
	PipelineInterview   PipelineStatus = "interview"
	PipelineRejected    PipelineStatus = "rejected"
)

// IsValid reports whether the status is one of the known pipeline stages.
func (s PipelineStatus) IsValid() bool {
	switch s {
	case PipelineReview, PipelineShortlisted, PipelineInterview, PipelineRejected:
		return true
	}
	return false
}

// Candidate is a scored résumé stored against a job.
type Candidate struct {
	ID             kernel.CandidateID           `db:"id" json:"id"`
	JobID          kernel.JobID                 `db:"job_id" json:"job_id"`
	Filename       string                       `db:"filename" json:"filename"`
	Name           string                       `db:"name" json:"name,omitempty"`
	Email          string                       `db:"email" json:"email,omitempty"`
	Phone          string                       `db:"phone" json:"phone,omitempty"`
	Location       string                       `db:"location" json:"location,omitempty"`
	TotalScore     float64                      `db:"total_score" json:"total_score"`
	Qualification  scoring.QualificationStatus  `db:"qualification" json:"qualification"`
	PipelineStatus PipelineStatus               `db:"pipeline_status" json:"pipeline_status"`
	Breakdown      map[string]scoring.ScoreBreakdown `db:"breakdown" json:"breakdown"`
	Profile        cvparse.CandidateProfile     `db:"profile" json:"profile"`
	ResumePath     string                       `db:"resume_path" json:"resume_path,omitempty"`
	CreatedAt      time.Time                    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time                    `db:"updated_at" json:"updated_at"`
}

// MoveTo transitions the candidate to a new pipeline stage.
func (c *Candidate) MoveTo(status PipelineStatus) error {
	if !status.IsValid() {
		return ErrInvalidPipelineStatus().WithDetail("status", string(status))
	}
	c.PipelineStatus = status
	c.UpdatedAt = time.Now()
	return nil
}
