package jobsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/errx"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/pkg/logx"
	"github.com/talentshift/ats/screening/job"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// CreateJob creates a new screening job
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.JobResponse, error) {
	newJob := &job.Job{
		ID:           kernel.NewJobID(uuid.NewString()),
		Title:        req.Title,
		Department:   req.Department,
		Requirements: req.Requirements,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	resp := job.ToResponse(newJob)
	return &resp, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resp := job.ToResponse(jobEntity)
	return &resp, nil
}

// ListJobs retrieves jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, req job.ListJobsRequest) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, req.ActiveOnly, req.Pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for i := range jobs.Items {
		responses = append(responses, job.ToResponse(&jobs.Items[i]))
	}

	return &job.PaginatedJobsResponse{
		Items:    responses,
		Total:    jobs.Total,
		Page:     jobs.Page,
		PageSize: jobs.PageSize,
	}, nil
}

// UpdateJob applies a partial update to a job
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	jobEntity.UpdateDetails(req.Title, req.Department, req.Requirements)
	if req.IsActive != nil {
		if *req.IsActive {
			jobEntity.Activate()
		} else {
			jobEntity.Deactivate()
		}
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, err
	}

	resp := job.ToResponse(jobEntity)
	return &resp, nil
}

// DeleteJob deletes a job by ID
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	return s.jobRepo.Delete(ctx, jobID)
}

// EnsureDefaultJob seeds the default requirement template when no jobs exist
// yet, so a fresh deployment can score candidates immediately.
func (s *JobService) EnsureDefaultJob(ctx context.Context) (*job.JobResponse, error) {
	count, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count jobs", errx.TypeInternal)
	}
	if count > 0 {
		return nil, nil
	}

	logx.Info("No jobs found, seeding default Backend Developer template")
	return s.CreateJob(ctx, job.CreateJobRequest{
		Title:        "Backend Developer",
		Department:   "Engineering",
		Requirements: scoring.DefaultRequirements(),
	})
}
