package candidatesrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentshift/ats/internal/cvparse"
	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/logx"
	"github.com/talentshift/ats/screening/candidate"
)

const (
	maxAttempts = 3
	retryDelay  = 30 * time.Second
)

// QueueBatch stores each uploaded résumé and enqueues a scoring job for it.
// Files that cannot be stored or queued are reported back, not retried.
func (s *Service) QueueBatch(ctx context.Context, req candidate.BatchUploadRequest) (*candidate.BatchQueuedResponse, error) {
	// Fail fast on an unknown job before accepting any file.
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, err
	}

	resp := &candidate.BatchQueuedResponse{
		JobID:     req.JobID,
		QueueName: "scoring",
	}

	for _, file := range req.Files {
		resolved, err := checkFileType(file.Filename, file.ContentType)
		if err != nil {
			resp.Failed = append(resp.Failed, file.Filename)
			continue
		}

		jobID := uuid.NewString()
		resumePath := "batches/" + jobID + "/" + file.Filename
		if err := s.storage.WriteFile(ctx, resumePath, file.Content, resolved); err != nil {
			logx.Errorf("Batch store failed for %s: %v", file.Filename, err)
			resp.Failed = append(resp.Failed, file.Filename)
			continue
		}

		scoringJob := &candidate.ScoringJob{
			ID:           jobID,
			JobID:        req.JobID,
			ResumePath:   resumePath,
			Filename:     file.Filename,
			ContentType:  resolved,
			AttemptCount: 0,
			MaxAttempts:  maxAttempts,
			EnqueuedAt:   time.Now(),
		}
		if err := s.queue.Enqueue(ctx, scoringJob); err != nil {
			logx.Errorf("Batch enqueue failed for %s: %v", file.Filename, err)
			resp.Failed = append(resp.Failed, file.Filename)
			continue
		}
		resp.Queued++
	}

	logx.Infof("Batch queued: job=%s queued=%d failed=%d", req.JobID, resp.Queued, len(resp.Failed))
	return resp, nil
}

// ProcessScoringJob is the worker entry point: it reads the stored résumé
// back, parses, scores and persists the candidate. Transient failures are
// retried through the delayed queue up to MaxAttempts.
func (s *Service) ProcessScoringJob(ctx context.Context, scoringJob *candidate.ScoringJob) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, scoringJob.JobID)
	if err != nil {
		// The job template is gone; retrying cannot help.
		logx.Errorf("Dropping scoring job %s: job %s not found", scoringJob.ID, scoringJob.JobID)
		return err
	}

	content, err := s.storage.ReadFile(ctx, scoringJob.ResumePath)
	if err != nil {
		return s.retryScoringJob(ctx, scoringJob, err)
	}

	profile := cvparse.ParseDocument(content, scoringJob.Filename, scoringJob.ContentType)
	score := scoring.Score(profile, jobEntity.Requirements)

	if _, err := s.saveCandidate(ctx, jobEntity.ID, scoringJob.Filename, scoringJob.ContentType, content, score); err != nil {
		return s.retryScoringJob(ctx, scoringJob, err)
	}

	// The batch copy is no longer needed once the candidate owns its bytes.
	if err := s.storage.DeleteFile(ctx, scoringJob.ResumePath); err != nil {
		logx.Warnf("Failed to delete batch file %s: %v", scoringJob.ResumePath, err)
	}

	logx.Infof("Processed scoring job %s: %s scored %.1f", scoringJob.ID, scoringJob.Filename, score.TotalScore)
	return nil
}

func (s *Service) retryScoringJob(ctx context.Context, scoringJob *candidate.ScoringJob, cause error) error {
	scoringJob.AttemptCount++
	if scoringJob.AttemptCount >= scoringJob.MaxAttempts {
		logx.Errorf("Scoring job %s failed permanently after %d attempts: %v",
			scoringJob.ID, scoringJob.AttemptCount, cause)
		return cause
	}

	logx.Warnf("Scoring job %s failed (attempt %d/%d), retrying in %s: %v",
		scoringJob.ID, scoringJob.AttemptCount, scoringJob.MaxAttempts, retryDelay, cause)
	if err := s.queue.EnqueueDelayed(ctx, scoringJob, retryDelay); err != nil {
		logx.Errorf("Failed to schedule retry for job %s: %v", scoringJob.ID, err)
		return err
	}
	return nil
}
