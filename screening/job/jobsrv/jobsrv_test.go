package jobsrv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/screening/job"
)

type memoryJobRepo struct {
	jobs  map[kernel.JobID]*job.Job
	order []kernel.JobID
}

func newMemoryJobRepo() *memoryJobRepo {
	return &memoryJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
}

func (r *memoryJobRepo) Create(_ context.Context, j *job.Job) error {
	if _, ok := r.jobs[j.ID]; ok {
		return job.ErrJobAlreadyExists()
	}
	r.jobs[j.ID] = j
	r.order = append(r.order, j.ID)
	return nil
}

func (r *memoryJobRepo) Update(_ context.Context, id kernel.JobID, j *job.Job) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	r.jobs[id] = j
	return nil
}

func (r *memoryJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	copied := *j
	return &copied, nil
}

func (r *memoryJobRepo) Delete(_ context.Context, id kernel.JobID) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *memoryJobRepo) List(_ context.Context, activeOnly bool, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var items []job.Job
	for _, id := range r.order {
		j, ok := r.jobs[id]
		if !ok {
			continue
		}
		if activeOnly && !j.IsActive {
			continue
		}
		items = append(items, *j)
	}
	return &kernel.Paginated[job.Job]{Items: items, Total: int64(len(items)), Page: p.Page, PageSize: p.PageSize}, nil
}

func (r *memoryJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func TestCreateAndGetJob(t *testing.T) {
	svc := NewJobService(newMemoryJobRepo())

	created, err := svc.CreateJob(context.Background(), job.CreateJobRequest{
		Title:        "Data Engineer",
		Department:   "Data",
		Requirements: scoring.DefaultRequirements(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	fetched, err := svc.GetJobByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", fetched.Title)
	assert.Equal(t, "Data", fetched.Department)
}

func TestGetJobNotFound(t *testing.T) {
	svc := NewJobService(newMemoryJobRepo())

	_, err := svc.GetJobByID(context.Background(), kernel.NewJobID("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Job not found")
}

func TestUpdateJobPartial(t *testing.T) {
	svc := NewJobService(newMemoryJobRepo())

	created, err := svc.CreateJob(context.Background(), job.CreateJobRequest{
		Title:        "Backend Developer",
		Requirements: scoring.DefaultRequirements(),
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateJob(context.Background(), created.ID, job.UpdateJobRequest{
		Title:    "Senior Backend Developer",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Developer", updated.Title)
	assert.False(t, updated.IsActive)
	// Untouched fields survive a partial update.
	assert.Equal(t, created.Requirements.Skills.Required, updated.Requirements.Skills.Required)
}

func TestListJobsActiveOnly(t *testing.T) {
	svc := NewJobService(newMemoryJobRepo())

	first, err := svc.CreateJob(context.Background(), job.CreateJobRequest{Title: "One"})
	require.NoError(t, err)
	_, err = svc.CreateJob(context.Background(), job.CreateJobRequest{Title: "Two"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateJob(context.Background(), first.ID, job.UpdateJobRequest{IsActive: &inactive})
	require.NoError(t, err)

	page, err := svc.ListJobs(context.Background(), job.ListJobsRequest{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Two", page.Items[0].Title)

	all, err := svc.ListJobs(context.Background(), job.ListJobsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestEnsureDefaultJobSeedsOnce(t *testing.T) {
	repo := newMemoryJobRepo()
	svc := NewJobService(repo)

	seeded, err := svc.EnsureDefaultJob(context.Background())
	require.NoError(t, err)
	require.NotNil(t, seeded)
	assert.Equal(t, "Backend Developer", seeded.Title)
	assert.Equal(t, []string{"Python", "SQL", "REST API"}, seeded.Requirements.Skills.Required)

	again, err := svc.EnsureDefaultJob(context.Background())
	require.NoError(t, err)
	assert.Nil(t, again)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestDeleteJob(t *testing.T) {
	svc := NewJobService(newMemoryJobRepo())

	created, err := svc.CreateJob(context.Background(), job.CreateJobRequest{Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(context.Background(), created.ID))
	_, err = svc.GetJobByID(context.Background(), created.ID)
	require.Error(t, err)
}
