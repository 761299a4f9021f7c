package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/talentshift/ats/pkg/logx"
	"github.com/talentshift/ats/screening/candidate"
	"github.com/talentshift/ats/screening/candidate/candidatesrv"
)

// ScoringWorker runs a pool of goroutines consuming the batch scoring queue.
type ScoringWorker struct {
	service *candidatesrv.Service
	queue   candidate.ScoringQueue
	workers int
}

func NewScoringWorker(service *candidatesrv.Service, queue candidate.ScoringQueue, workers int) *ScoringWorker {
	return &ScoringWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ScoringWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d scoring workers", w.workers)

	// Start delayed job mover
	go w.moveDelayedJobs(ctx)

	// Start worker pool
	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ScoringWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Worker %d stopping", workerID)
			return
		default:
			// Dequeue with 5 second timeout
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Timeout with no jobs available
			if len(data) == 0 {
				continue
			}

			var job candidate.ScoringJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Worker %d processing scoring job: %s", workerID, job.ID)
			if err := w.service.ProcessScoringJob(ctx, &job); err != nil {
				logx.Errorf("Worker %d job failed: %v", workerID, err)
			}
		}
	}
}

func (w *ScoringWorker) moveDelayedJobs(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed jobs: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed jobs to ready queue", count)
			}
		}
	}
}
