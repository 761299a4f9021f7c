package candidateinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentshift/ats/screening/candidate"
)

// RedisScoringQueue implements candidate.ScoringQueue using Redis lists, with
// a sorted set for delayed retries.
type RedisScoringQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisScoringQueue creates a new Redis-based scoring queue
func NewRedisScoringQueue(client *redis.Client, queueName string) candidate.ScoringQueue {
	return &RedisScoringQueue{
		client:    client,
		queueName: queueName,
	}
}

func (q *RedisScoringQueue) delayedQueue() string {
	return q.queueName + ":delayed"
}

// Enqueue adds a job to the queue
func (q *RedisScoringQueue) Enqueue(ctx context.Context, job *candidate.ScoringJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal scoring job %s: %w", job.ID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue scoring job %s: %w", job.ID, err)
	}
	return nil
}

// Dequeue gets a job from the queue (blocking with timeout)
func (q *RedisScoringQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout expires
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue scoring job: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}
	return []byte(result[1]), nil
}

// EnqueueDelayed schedules a job for later processing (for retries)
func (q *RedisScoringQueue) EnqueueDelayed(ctx context.Context, job *candidate.ScoringJob, delay time.Duration) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal delayed scoring job %s: %w", job.ID, err)
	}

	score := float64(time.Now().Add(delay).Unix())
	if err := q.client.ZAdd(ctx, q.delayedQueue(), redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed scoring job %s: %w", job.ID, err)
	}
	return nil
}

// MoveDelayedToReady moves delayed jobs that are ready to the main queue
func (q *RedisScoringQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	now := float64(time.Now().Unix())

	jobs, err := q.client.ZRangeByScore(ctx, q.delayedQueue(), &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed scoring jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	// Pipeline keeps move-and-remove atomic per job
	pipe := q.client.Pipeline()
	for _, job := range jobs {
		pipe.LPush(ctx, q.queueName, job)
		pipe.ZRem(ctx, q.delayedQueue(), job)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed scoring jobs to ready: %w", err)
	}
	return len(jobs), nil
}

// Size returns the number of ready jobs in the queue
func (q *RedisScoringQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// DelayedSize returns the number of delayed jobs
func (q *RedisScoringQueue) DelayedSize(ctx context.Context) (int64, error) {
	size, err := q.client.ZCard(ctx, q.delayedQueue()).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed queue size: %w", err)
	}
	return size, nil
}
