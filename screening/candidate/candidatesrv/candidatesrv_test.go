package candidatesrv

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentshift/ats/internal/docgen"
	"github.com/talentshift/ats/internal/doctext"
	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/screening/candidate"
	"github.com/talentshift/ats/screening/job"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func newFakeJobRepo(jobs ...*job.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, id kernel.JobID, j *job.Job) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	r.jobs[id] = j
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id kernel.JobID) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(_ context.Context, _ bool, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	items := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		items = append(items, *j)
	}
	return &kernel.Paginated[job.Job]{Items: items, Total: int64(len(items)), Page: p.Page, PageSize: p.PageSize}, nil
}

func (r *fakeJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

type fakeCandidateRepo struct {
	byID  map[kernel.CandidateID]*candidate.Candidate
	order []kernel.CandidateID
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{byID: make(map[kernel.CandidateID]*candidate.Candidate)}
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCandidateRepo) Update(_ context.Context, id kernel.CandidateID, c *candidate.Candidate) error {
	if _, ok := r.byID[id]; !ok {
		return candidate.ErrCandidateNotFound()
	}
	r.byID[id] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound()
	}
	return c, nil
}

func (r *fakeCandidateRepo) Delete(_ context.Context, id kernel.CandidateID) error {
	if _, ok := r.byID[id]; !ok {
		return candidate.ErrCandidateNotFound()
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCandidateRepo) List(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	all, _ := r.ListAll(ctx, req.JobID)
	return &candidate.PaginatedCandidatesResponse{
		Items:    all,
		Total:    int64(len(all)),
		Page:     req.Pagination.Page,
		PageSize: req.Pagination.PageSize,
	}, nil
}

func (r *fakeCandidateRepo) ListAll(_ context.Context, jobID kernel.JobID) ([]candidate.Candidate, error) {
	var out []candidate.Candidate
	for _, id := range r.order {
		c, ok := r.byID[id]
		if !ok {
			continue
		}
		if !jobID.IsEmpty() && c.JobID != jobID {
			continue
		}
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalScore > out[j].TotalScore })
	return out, nil
}

func (r *fakeCandidateRepo) UpdatePipelineStatus(_ context.Context, id kernel.CandidateID, status candidate.PipelineStatus) error {
	c, ok := r.byID[id]
	if !ok {
		return candidate.ErrCandidateNotFound()
	}
	c.PipelineStatus = status
	return nil
}

func (r *fakeCandidateRepo) Count(_ context.Context, _ kernel.JobID) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, assert.AnError
	}
	return data, nil
}

func (s *fakeStorage) WriteFile(_ context.Context, path string, data []byte, _ string) error {
	s.files[path] = data
	return nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

type fakeQueue struct {
	ready   []*candidate.ScoringJob
	delayed []*candidate.ScoringJob
}

func (q *fakeQueue) Enqueue(_ context.Context, j *candidate.ScoringJob) error {
	q.ready = append(q.ready, j)
	return nil
}

func (q *fakeQueue) Dequeue(_ context.Context, _ time.Duration) ([]byte, error) {
	return nil, nil
}

func (q *fakeQueue) EnqueueDelayed(_ context.Context, j *candidate.ScoringJob, _ time.Duration) error {
	q.delayed = append(q.delayed, j)
	return nil
}

func (q *fakeQueue) MoveDelayedToReady(_ context.Context) (int, error) {
	moved := len(q.delayed)
	q.ready = append(q.ready, q.delayed...)
	q.delayed = nil
	return moved, nil
}

func (q *fakeQueue) Size(_ context.Context) (int64, error)        { return int64(len(q.ready)), nil }
func (q *fakeQueue) DelayedSize(_ context.Context) (int64, error) { return int64(len(q.delayed)), nil }

// ============================================================================
// Fixtures
// ============================================================================

func testJob() *job.Job {
	return &job.Job{
		ID:           kernel.NewJobID("job-1"),
		Title:        "Backend Developer",
		Requirements: scoring.DefaultRequirements(),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func newTestService(t *testing.T) (*Service, *fakeCandidateRepo, *fakeStorage, *fakeQueue) {
	t.Helper()
	repo := newFakeCandidateRepo()
	storage := newFakeStorage()
	queue := &fakeQueue{}
	svc := NewService(repo, newFakeJobRepo(testJob()), storage, queue)
	return svc, repo, storage, queue
}

func sampleDOCX(t *testing.T) []byte {
	t.Helper()
	var doc docgen.Document
	for _, line := range []string{
		"Andi Wijaya",
		"andi.wijaya@gmail.com",
		"Jakarta",
		"S1 Teknik Informatika",
		"5 years of experience as Backend Developer",
		"Skills: Python, SQL, Rest API, PostgreSQL, Docker",
		"Bootcamp: Hacktiv8",
		"github.com/andiwijaya",
	} {
		doc.AddParagraph(line)
	}
	content, err := doc.Bytes()
	require.NoError(t, err)
	return content
}

// ============================================================================
// Tests
// ============================================================================

func TestParseResumeRejectsUnknownType(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ParseResume(context.Background(), "photo.png", "image/png", []byte{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Only PDF and DOCX")
}

func TestParseResumeInfersTypeFromExtension(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	profile, err := svc.ParseResume(context.Background(), "cv.docx", "", sampleDOCX(t))
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", profile.Name)
	assert.Equal(t, "andi.wijaya@gmail.com", profile.Email)
}

func TestScoreResumeWithoutSave(t *testing.T) {
	svc, repo, storage, _ := newTestService(t)

	resp, err := svc.ScoreResume(context.Background(), candidate.ScoreUploadRequest{
		JobID:       kernel.NewJobID("job-1"),
		Filename:    "cv.docx",
		ContentType: doctext.MimeDOCX,
		Content:     sampleDOCX(t),
	})
	require.NoError(t, err)

	assert.True(t, resp.CandidateID.IsEmpty())
	assert.Greater(t, resp.TotalScore, 0.0)
	assert.Len(t, resp.Breakdown, 6)
	assert.Empty(t, repo.byID)
	assert.Empty(t, storage.files)
}

func TestScoreResumeWithSave(t *testing.T) {
	svc, repo, storage, _ := newTestService(t)

	resp, err := svc.ScoreResume(context.Background(), candidate.ScoreUploadRequest{
		JobID:       kernel.NewJobID("job-1"),
		Filename:    "cv.docx",
		ContentType: doctext.MimeDOCX,
		Content:     sampleDOCX(t),
		Save:        true,
	})
	require.NoError(t, err)
	require.False(t, resp.CandidateID.IsEmpty())

	stored, err := repo.GetByID(context.Background(), resp.CandidateID)
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", stored.Name)
	assert.Equal(t, candidate.PipelineReview, stored.PipelineStatus)
	assert.Equal(t, resp.TotalScore, stored.TotalScore)

	expectedPath := "resumes/" + resp.CandidateID.String() + "/cv.docx"
	assert.Equal(t, expectedPath, stored.ResumePath)
	assert.Contains(t, storage.files, expectedPath)
}

func TestScoreResumeUnknownJob(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ScoreResume(context.Background(), candidate.ScoreUploadRequest{
		JobID:       kernel.NewJobID("missing"),
		Filename:    "cv.docx",
		ContentType: doctext.MimeDOCX,
		Content:     sampleDOCX(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Job not found")
}

func TestQueueBatchStoresAndEnqueues(t *testing.T) {
	svc, _, storage, queue := newTestService(t)

	resp, err := svc.QueueBatch(context.Background(), candidate.BatchUploadRequest{
		JobID: kernel.NewJobID("job-1"),
		Files: []candidate.BatchFile{
			{Filename: "a.docx", ContentType: doctext.MimeDOCX, Content: sampleDOCX(t)},
			{Filename: "b.docx", ContentType: doctext.MimeDOCX, Content: sampleDOCX(t)},
			{Filename: "bad.txt", ContentType: "text/plain", Content: []byte("nope")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Queued)
	assert.Equal(t, []string{"bad.txt"}, resp.Failed)
	assert.Len(t, queue.ready, 2)
	assert.Len(t, storage.files, 2)

	for _, scoringJob := range queue.ready {
		assert.Equal(t, kernel.NewJobID("job-1"), scoringJob.JobID)
		assert.Equal(t, maxAttempts, scoringJob.MaxAttempts)
		assert.Contains(t, storage.files, scoringJob.ResumePath)
	}
}

func TestProcessScoringJobPersistsCandidate(t *testing.T) {
	svc, repo, storage, queue := newTestService(t)

	_, err := svc.QueueBatch(context.Background(), candidate.BatchUploadRequest{
		JobID: kernel.NewJobID("job-1"),
		Files: []candidate.BatchFile{
			{Filename: "a.docx", ContentType: doctext.MimeDOCX, Content: sampleDOCX(t)},
		},
	})
	require.NoError(t, err)
	require.Len(t, queue.ready, 1)

	scoringJob := queue.ready[0]
	require.NoError(t, svc.ProcessScoringJob(context.Background(), scoringJob))

	require.Len(t, repo.byID, 1)
	for _, c := range repo.byID {
		assert.Equal(t, "a.docx", c.Filename)
		assert.Equal(t, "Andi Wijaya", c.Name)
	}

	// The batch copy is removed, the candidate copy remains.
	assert.NotContains(t, storage.files, scoringJob.ResumePath)
	assert.Len(t, storage.files, 1)
}

func TestProcessScoringJobRetriesOnReadFailure(t *testing.T) {
	svc, repo, _, queue := newTestService(t)

	scoringJob := &candidate.ScoringJob{
		ID:          "j1",
		JobID:       kernel.NewJobID("job-1"),
		ResumePath:  "batches/j1/gone.docx",
		Filename:    "gone.docx",
		ContentType: doctext.MimeDOCX,
		MaxAttempts: maxAttempts,
	}
	require.NoError(t, svc.ProcessScoringJob(context.Background(), scoringJob))

	assert.Empty(t, repo.byID)
	require.Len(t, queue.delayed, 1)
	assert.Equal(t, 1, queue.delayed[0].AttemptCount)
}

func TestProcessScoringJobGivesUpAfterMaxAttempts(t *testing.T) {
	svc, _, _, queue := newTestService(t)

	scoringJob := &candidate.ScoringJob{
		ID:           "j1",
		JobID:        kernel.NewJobID("job-1"),
		ResumePath:   "batches/j1/gone.docx",
		Filename:     "gone.docx",
		ContentType:  doctext.MimeDOCX,
		AttemptCount: maxAttempts - 1,
		MaxAttempts:  maxAttempts,
	}
	require.Error(t, svc.ProcessScoringJob(context.Background(), scoringJob))
	assert.Empty(t, queue.delayed)
}

func TestUpdatePipelineStatus(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	entity := &candidate.Candidate{
		ID:             kernel.NewCandidateID("c1"),
		JobID:          kernel.NewJobID("job-1"),
		PipelineStatus: candidate.PipelineReview,
	}
	require.NoError(t, repo.Create(context.Background(), entity))

	updated, err := svc.UpdatePipelineStatus(context.Background(), entity.ID, candidate.PipelineShortlisted)
	require.NoError(t, err)
	assert.Equal(t, candidate.PipelineShortlisted, updated.PipelineStatus)

	_, err = svc.UpdatePipelineStatus(context.Background(), entity.ID, candidate.PipelineStatus("bogus"))
	require.Error(t, err)
}

func TestDeleteCandidateRemovesStoredResume(t *testing.T) {
	svc, repo, storage, _ := newTestService(t)

	resp, err := svc.ScoreResume(context.Background(), candidate.ScoreUploadRequest{
		JobID:       kernel.NewJobID("job-1"),
		Filename:    "cv.docx",
		ContentType: doctext.MimeDOCX,
		Content:     sampleDOCX(t),
		Save:        true,
	})
	require.NoError(t, err)
	require.Len(t, storage.files, 1)

	require.NoError(t, svc.DeleteCandidate(context.Background(), resp.CandidateID))
	assert.Empty(t, repo.byID)
	assert.Empty(t, storage.files)
}
