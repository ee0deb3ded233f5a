package jobstatus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/scalable_field/internal/core/domain"
)

const (
	jobKeyPrefix = "export:job:"

	// Job records outlive their artifact interest window and then expire;
	// a purged record reads back as NOT_FOUND.
	jobTTL = 24 * time.Hour
)

// RedisStore keeps export job status and progress in a redis hash per job.
// The executing worker is the only writer.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) SetQueued(ctx context.Context, jobID string) error {
	key := jobKey(jobID)

	if err := s.client.HSet(ctx, key, "status", string(domain.ExportQueued), "pct", 0).Err(); err != nil {
		return err
	}

	return s.client.Expire(ctx, key, jobTTL).Err()
}

func (s *RedisStore) SetRunning(ctx context.Context, jobID string) error {
	return s.client.HSet(ctx, jobKey(jobID), "status", string(domain.ExportRunning), "pct", 0).Err()
}

func (s *RedisStore) PublishProgress(ctx context.Context, jobID string, pct int) error {
	if pct < 0 {
		pct = 0
	}

	if pct > 100 {
		pct = 100
	}

	return s.client.HSet(ctx, jobKey(jobID), "pct", pct).Err()
}

func (s *RedisStore) SetCompleted(ctx context.Context, jobID, artifact string) error {
	return s.client.HSet(ctx, jobKey(jobID),
		"status", string(domain.ExportCompleted),
		"pct", 100,
		"artifact", artifact,
	).Err()
}

func (s *RedisStore) SetFailed(ctx context.Context, jobID, cause string) error {
	return s.client.HSet(ctx, jobKey(jobID),
		"status", string(domain.ExportFailed),
		"error", cause,
	).Err()
}

// Get reads the job record. A missing key is not an error: it reports status
// NOT_FOUND so pollers can treat purged and unknown jobs alike.
func (s *RedisStore) Get(ctx context.Context, jobID string) (*domain.ExportJob, error) {
	fields, err := s.client.HGetAll(ctx, jobKey(jobID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read job %s: %w", jobID, err)
	}

	if len(fields) == 0 {
		return &domain.ExportJob{ID: jobID, Status: domain.ExportNotFound}, nil
	}

	pct, _ := strconv.Atoi(fields["pct"])

	return &domain.ExportJob{
		ID:       jobID,
		Status:   domain.ExportStatus(fields["status"]),
		Progress: pct,
		Artifact: fields["artifact"],
		Error:    fields["error"],
	}, nil
}

func jobKey(jobID string) string {
	return jobKeyPrefix + jobID
}
