package candidatesrv

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentshift/ats/internal/cvparse"
	"github.com/talentshift/ats/internal/doctext"
	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/errx"
	"github.com/talentshift/ats/pkg/fsx"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/pkg/logx"
	"github.com/talentshift/ats/screening/candidate"
	"github.com/talentshift/ats/screening/job"
)

// Service orchestrates résumé parsing, scoring and candidate persistence.
type Service struct {
	repo    candidate.Repository
	jobRepo job.Repository
	storage fsx.FileSystem
	queue   candidate.ScoringQueue
}

// NewService creates a new candidate service
func NewService(
	repo candidate.Repository,
	jobRepo job.Repository,
	storage fsx.FileSystem,
	queue candidate.ScoringQueue,
) *Service {
	return &Service{
		repo:    repo,
		jobRepo: jobRepo,
		storage: storage,
		queue:   queue,
	}
}

// resolveContentType normalizes the declared content type, falling back to
// the filename extension when the client sent none.
func resolveContentType(filename, contentType string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf":
		return doctext.MimePDF
	case ".docx":
		return doctext.MimeDOCX
	}
	return contentType
}

// checkFileType enforces the PDF/DOCX upload contract.
func checkFileType(filename, contentType string) (string, error) {
	resolved := resolveContentType(filename, contentType)
	if resolved != doctext.MimePDF && resolved != doctext.MimeDOCX {
		return "", candidate.ErrUnsupportedFileType().
			WithDetail("filename", filename).
			WithDetail("content_type", contentType)
	}
	return resolved, nil
}

// ParseResume extracts a profile from an uploaded résumé without scoring it.
func (s *Service) ParseResume(ctx context.Context, filename, contentType string, content []byte) (*cvparse.CandidateProfile, error) {
	resolved, err := checkFileType(filename, contentType)
	if err != nil {
		return nil, err
	}

	logx.Infof("Parsing resume: file=%s type=%s size=%d", filename, resolved, len(content))
	return cvparse.ParseDocument(content, filename, resolved), nil
}

// ScoreResume parses and scores an uploaded résumé against a job. When
// req.Save is set, the résumé bytes and the scored record are persisted.
func (s *Service) ScoreResume(ctx context.Context, req candidate.ScoreUploadRequest) (*candidate.ScoreResponse, error) {
	resolved, err := checkFileType(req.Filename, req.ContentType)
	if err != nil {
		return nil, err
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	profile := cvparse.ParseDocument(req.Content, req.Filename, resolved)
	score := scoring.Score(profile, jobEntity.Requirements)
	logx.Infof("Scored resume %s against job %s: %.1f (%s)", req.Filename, req.JobID, score.TotalScore, score.Status)

	resp := &candidate.ScoreResponse{CandidateScore: score}
	if !req.Save {
		return resp, nil
	}

	saved, err := s.saveCandidate(ctx, jobEntity.ID, req.Filename, resolved, req.Content, score)
	if err != nil {
		return nil, err
	}
	resp.CandidateID = saved.ID
	return resp, nil
}

// saveCandidate stores the résumé bytes and the scored record.
func (s *Service) saveCandidate(ctx context.Context, jobID kernel.JobID, filename, contentType string, content []byte, score *scoring.CandidateScore) (*candidate.Candidate, error) {
	id := kernel.NewCandidateID(uuid.NewString())
	resumePath := "resumes/" + id.String() + "/" + filename

	if err := s.storage.WriteFile(ctx, resumePath, content, contentType); err != nil {
		return nil, candidate.ErrStorageFailed().
			WithDetail("resume_path", resumePath).
			WithCause(err)
	}

	now := time.Now()
	entity := &candidate.Candidate{
		ID:             id,
		JobID:          jobID,
		Filename:       filename,
		Name:           score.CandidateName,
		Email:          score.Email,
		Phone:          score.Profile.Phone,
		Location:       score.Profile.Location,
		TotalScore:     score.TotalScore,
		Qualification:  score.Status,
		PipelineStatus: candidate.PipelineReview,
		Breakdown:      score.Breakdown,
		Profile:        score.Profile,
		ResumePath:     resumePath,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, errx.Wrap(err, "failed to save candidate", errx.TypeInternal)
	}
	return entity, nil
}

// GetCandidate retrieves a candidate by ID
func (s *Service) GetCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCandidates retrieves candidates matching the filters
func (s *Service) ListCandidates(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	if req.PipelineStatus != "" && !req.PipelineStatus.IsValid() {
		return nil, candidate.ErrInvalidPipelineStatus().WithDetail("status", string(req.PipelineStatus))
	}
	req.Pagination = req.Pagination.Normalize()
	return s.repo.List(ctx, req)
}

// UpdatePipelineStatus moves a candidate to a new pipeline stage
func (s *Service) UpdatePipelineStatus(ctx context.Context, id kernel.CandidateID, status candidate.PipelineStatus) (*candidate.Candidate, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.MoveTo(status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePipelineStatus(ctx, id, status); err != nil {
		return nil, errx.Wrap(err, "failed to update pipeline status", errx.TypeInternal)
	}
	return entity, nil
}

// DeleteCandidate removes the candidate record and, best-effort, the stored
// résumé bytes.
func (s *Service) DeleteCandidate(ctx context.Context, id kernel.CandidateID) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if entity.ResumePath != "" {
		if err := s.storage.DeleteFile(ctx, entity.ResumePath); err != nil {
			logx.Warnf("Failed to delete stored resume %s: %v", entity.ResumePath, err)
		}
	}
	return nil
}
