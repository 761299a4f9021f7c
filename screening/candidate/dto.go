package candidate

import (
	"time"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
)

// ScoreUploadRequest - DTO describing a single uploaded résumé to score
type ScoreUploadRequest struct {
	JobID       kernel.JobID `json:"job_id" validate:"required"`
	Filename    string       `json:"filename" validate:"required"`
	ContentType string       `json:"content_type"`
	Content     []byte       `json:"-"`
	Save        bool         `json:"save"`
}

// ScoreResponse - scoring result, with the stored ID when persisted
type ScoreResponse struct {
	*scoring.CandidateScore
	CandidateID kernel.CandidateID `json:"candidate_id,omitempty"`
}

// BatchUploadRequest - DTO for queueing many résumés against one job
type BatchUploadRequest struct {
	JobID kernel.JobID `json:"job_id" validate:"required"`
	Files []BatchFile  `json:"files" validate:"required,min=1"`
}

// BatchFile is one uploaded file in a batch
type BatchFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// BatchQueuedResponse - result of queueing a batch
type BatchQueuedResponse struct {
	JobID     kernel.JobID `json:"job_id"`
	Queued    int          `json:"queued"`
	Failed    []string     `json:"failed,omitempty"`
	QueueName string       `json:"queue_name"`
}

// ListCandidatesRequest - filters for listing candidates
type ListCandidatesRequest struct {
	JobID          kernel.JobID             `json:"job_id,omitempty"`
	PipelineStatus PipelineStatus           `json:"pipeline_status,omitempty"`
	MinScore       *float64                 `json:"min_score,omitempty"`
	MaxScore       *float64                 `json:"max_score,omitempty"`
	Search         string                   `json:"search,omitempty"`
	Pagination     kernel.PaginationOptions `json:"pagination"`
}

// UpdateStatusRequest - DTO for moving a candidate through the pipeline
type UpdateStatusRequest struct {
	Status PipelineStatus `json:"status" validate:"required"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[Candidate]

// StatsResponse - aggregate counts over stored candidates
type StatsResponse struct {
	TotalCandidates   int64                            `json:"total_candidates"`
	AverageScore      float64                          `json:"average_score"`
	ByPipelineStatus  map[PipelineStatus]int64         `json:"by_pipeline_status"`
	ScoreDistribution map[string]int64                 `json:"score_distribution"`
	ByQualification   map[scoring.QualificationStatus]int64 `json:"by_qualification"`
}

// AnalyticsResponse - stats plus frequency breakdowns
type AnalyticsResponse struct {
	Stats          StatsResponse    `json:"stats"`
	TopSkills      []SkillFrequency `json:"top_skills"`
	ByEducation    map[string]int64 `json:"by_education"`
	ByLocation     map[string]int64 `json:"by_location"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// SkillFrequency is one entry of the top-skills ranking
type SkillFrequency struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

// ExportRequest - DTO for exporting ranked candidates
type ExportRequest struct {
	JobID  kernel.JobID `json:"job_id,omitempty"`
	Format string       `json:"format" validate:"oneof=csv xlsx"`
}

// ExportResult carries the rendered export file
type ExportResult struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}
