package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
	"github.com/srgjo27/scalable_field/internal/worker"
)

func TestPool_RunsEveryEnqueuedJob(t *testing.T) {
	var mu sync.Mutex
	ran := map[string]bool{}

	pool := worker.NewPool(worker.Config{Workers: 3, QueueSize: 16, JobTimeout: time.Minute}, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx, func(ctx context.Context, jobID string, filter domain.BookingFilter) {
		mu.Lock()
		ran[jobID] = true
		mu.Unlock()
	})

	jobIDs := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		jobID := uuid.NewString()
		jobIDs = append(jobIDs, jobID)
		assert.NoError(t, pool.Enqueue(jobID, domain.BookingFilter{}))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.NoError(t, pool.Stop(stopCtx))

	mu.Lock()
	defer mu.Unlock()
	for _, jobID := range jobIDs {
		assert.True(t, ran[jobID], "job %s was never run", jobID)
	}

	_, processed, queued := pool.Stats()
	assert.Equal(t, int64(8), processed)
	assert.Equal(t, 0, queued)
}

func TestPool_EnqueueFailsWhenQueueFull(t *testing.T) {
	pool := worker.NewPool(worker.Config{Workers: 1, QueueSize: 1}, logger.NewNop())

	// Not started: the first job fills the only queue slot.
	assert.NoError(t, pool.Enqueue(uuid.NewString(), domain.BookingFilter{}))

	err := pool.Enqueue(uuid.NewString(), domain.BookingFilter{})
	assert.ErrorIs(t, err, worker.ErrQueueFull)
}

func TestPool_StopWaitsForInFlightJobs(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	pool := worker.NewPool(worker.Config{Workers: 1, QueueSize: 4, JobTimeout: time.Minute}, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx, func(ctx context.Context, jobID string, filter domain.BookingFilter) {
		close(started)
		<-release
	})

	assert.NoError(t, pool.Enqueue(uuid.NewString(), domain.BookingFilter{}))
	<-started

	inFlight, _, _ := pool.Stats()
	assert.Equal(t, int64(1), inFlight)

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(release)
	}()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.NoError(t, pool.Stop(stopCtx))

	inFlight, processed, _ := pool.Stats()
	assert.Equal(t, int64(0), inFlight)
	assert.Equal(t, int64(1), processed)
}
