package jobstatus_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/scalable_field/internal/adapter/jobstatus"
	"github.com/srgjo27/scalable_field/internal/core/domain"
)

func TestRedisStore_QueuedLifecycle(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := jobstatus.NewRedisStore(db)

	ctx := context.Background()
	jobID := "job-1"
	key := "export:job:" + jobID

	mockRedis.ExpectHSet(key, "status", string(domain.ExportQueued), "pct", 0).SetVal(2)
	mockRedis.ExpectExpire(key, 24*time.Hour).SetVal(true)

	assert.NoError(t, store.SetQueued(ctx, jobID))

	mockRedis.ExpectHSet(key, "status", string(domain.ExportRunning), "pct", 0).SetVal(0)
	assert.NoError(t, store.SetRunning(ctx, jobID))

	mockRedis.ExpectHSet(key, "pct", 40).SetVal(0)
	assert.NoError(t, store.PublishProgress(ctx, jobID, 40))

	mockRedis.ExpectHSet(key, "status", string(domain.ExportCompleted), "pct", 100, "artifact", "/data/bookings_job-1.xlsx").SetVal(0)
	assert.NoError(t, store.SetCompleted(ctx, jobID, "/data/bookings_job-1.xlsx"))

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_GetCompletedIsStable(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := jobstatus.NewRedisStore(db)

	ctx := context.Background()
	key := "export:job:job-2"
	record := map[string]string{
		"status":   string(domain.ExportCompleted),
		"pct":      "100",
		"artifact": "/data/bookings_job-2.xlsx",
	}

	// Two polls of a terminal job return the identical view.
	mockRedis.ExpectHGetAll(key).SetVal(record)
	mockRedis.ExpectHGetAll(key).SetVal(record)

	for i := 0; i < 2; i++ {
		job, err := store.Get(ctx, "job-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ExportCompleted, job.Status)
		assert.Equal(t, 100, job.Progress)
		assert.Equal(t, "/data/bookings_job-2.xlsx", job.Artifact)
	}

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_GetUnknownJob(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := jobstatus.NewRedisStore(db)

	mockRedis.ExpectHGetAll("export:job:gone").SetVal(map[string]string{})

	job, err := store.Get(context.Background(), "gone")

	assert.NoError(t, err)
	assert.Equal(t, domain.ExportNotFound, job.Status)
	assert.Equal(t, "gone", job.ID)
	assert.Empty(t, job.Artifact)
}

func TestRedisStore_SetFailed(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := jobstatus.NewRedisStore(db)

	key := "export:job:job-3"
	mockRedis.ExpectHSet(key, "status", string(domain.ExportFailed), "error", "disk full").SetVal(0)

	assert.NoError(t, store.SetFailed(context.Background(), "job-3", "disk full"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_ProgressClamped(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := jobstatus.NewRedisStore(db)

	key := "export:job:job-4"
	mockRedis.ExpectHSet(key, "pct", 100).SetVal(0)
	mockRedis.ExpectHSet(key, "pct", 0).SetVal(0)

	assert.NoError(t, store.PublishProgress(context.Background(), "job-4", 150))
	assert.NoError(t, store.PublishProgress(context.Background(), "job-4", -5))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
