package services_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/scalable_field/internal/adapter/export"
	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/core/ports/mocks"
	"github.com/srgjo27/scalable_field/internal/core/services"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
	"github.com/srgjo27/scalable_field/internal/worker"
)

// memStatusStore is a stateful stand-in for the redis job status store so the
// full submit/run/poll cycle can be exercised in-process.
type memStatusStore struct {
	mu        sync.Mutex
	jobs      map[string]*domain.ExportJob
	published []int
}

func newMemStatusStore() *memStatusStore {
	return &memStatusStore{jobs: map[string]*domain.ExportJob{}}
}

func (s *memStatusStore) SetQueued(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = &domain.ExportJob{ID: jobID, Status: domain.ExportQueued}
	return nil
}

func (s *memStatusStore) SetRunning(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = &domain.ExportJob{ID: jobID, Status: domain.ExportRunning}
	return nil
}

func (s *memStatusStore) PublishProgress(ctx context.Context, jobID string, pct int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, pct)
	if job, ok := s.jobs[jobID]; ok {
		job.Progress = pct
	}
	return nil
}

func (s *memStatusStore) SetCompleted(ctx context.Context, jobID, artifact string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = &domain.ExportJob{ID: jobID, Status: domain.ExportCompleted, Progress: 100, Artifact: artifact}
	return nil
}

func (s *memStatusStore) SetFailed(ctx context.Context, jobID, cause string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = &domain.ExportJob{ID: jobID, Status: domain.ExportFailed, Error: cause}
	return nil
}

func (s *memStatusStore) Get(ctx context.Context, jobID string) (*domain.ExportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[jobID]; ok {
		copied := *job
		return &copied, nil
	}
	return &domain.ExportJob{ID: jobID, Status: domain.ExportNotFound}, nil
}

func (s *memStatusStore) progressHistory() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.published...)
}

func sampleBookings(userID uuid.UUID, n int) []domain.Booking {
	bookings := make([]domain.Booking, 0, n)
	for i := 0; i < n; i++ {
		bookings = append(bookings, domain.Booking{
			ID:          uuid.New(),
			UserID:      userID,
			FieldID:     uuid.New(),
			FieldName:   "Field A",
			BookingDate: time.Date(2026, 9, 1+i, 0, 0, 0, 0, time.UTC),
			StartHour:   8,
			EndHour:     10,
			BasePrice:   100,
			FinalPrice:  80,
			Status:      domain.BookingPaid,
			CreatedAt:   time.Now(),
		})
	}
	return bookings
}

func pollUntilDone(t *testing.T, svc *services.ExportService, actor uuid.UUID, jobID string) *domain.ExportJob {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("export job did not reach a terminal status in time")
			return nil
		default:
		}

		job, err := svc.GetStatus(context.Background(), actor, jobID)
		assert.NoError(t, err)

		if job.Status != domain.ExportQueued && job.Status != domain.ExportRunning {
			return job
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func TestExport_SubmitRunPollDownload(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	bookingRepo := mocks.NewBookingRepository(t)
	authz := mocks.NewAuthorizer(t)
	status := newMemStatusStore()
	artifacts := export.NewStore(t.TempDir())
	pool := worker.NewPool(worker.Config{Workers: 1, QueueSize: 4, JobTimeout: time.Minute}, logger.NewNop())

	svc := services.NewExportService(bookingRepo, status, artifacts, pool, authz, logger.NewNop())

	poolCtx, stop := context.WithCancel(ctx)
	defer stop()
	pool.Start(poolCtx, svc.Execute)

	authz.On("Authorize", mock.Anything, actor, mock.AnythingOfType("string"), "booking").Return(true)
	bookingRepo.On("ListByUser", mock.Anything, mock.MatchedBy(func(filter domain.BookingFilter) bool {
		return filter.UserID == actor
	})).Return(sampleBookings(actor, 5), nil)

	jobID, err := svc.Submit(ctx, actor, domain.BookingFilter{})
	assert.NoError(t, err)
	assert.NotEmpty(t, jobID)

	job := pollUntilDone(t, svc, actor, jobID)
	assert.Equal(t, domain.ExportCompleted, job.Status)
	assert.Equal(t, 100, job.Progress)
	assert.NotEmpty(t, job.Artifact)

	// Polling a completed job is idempotent.
	again, err := svc.GetStatus(ctx, actor, jobID)
	assert.NoError(t, err)
	assert.Equal(t, job.Status, again.Status)
	assert.Equal(t, job.Progress, again.Progress)
	assert.Equal(t, job.Artifact, again.Artifact)

	// Progress only ever moved forward.
	history := status.progressHistory()
	for i := 1; i < len(history); i++ {
		assert.GreaterOrEqual(t, history[i], history[i-1])
	}

	reader, filename, err := svc.Download(ctx, actor, jobID)
	assert.NoError(t, err)
	assert.Equal(t, "bookings_"+jobID+".xlsx", filename)

	payload, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.NoError(t, reader.Close())
}

func TestExport_DownloadBeforeCompletion(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	bookingRepo := mocks.NewBookingRepository(t)
	authz := mocks.NewAuthorizer(t)
	status := newMemStatusStore()
	artifacts := export.NewStore(t.TempDir())

	// The pool is never started, so the job stays queued.
	pool := worker.NewPool(worker.Config{Workers: 1, QueueSize: 4}, logger.NewNop())

	svc := services.NewExportService(bookingRepo, status, artifacts, pool, authz, logger.NewNop())

	authz.On("Authorize", mock.Anything, actor, mock.AnythingOfType("string"), "booking").Return(true)

	jobID, err := svc.Submit(ctx, actor, domain.BookingFilter{})
	assert.NoError(t, err)

	_, _, err = svc.Download(ctx, actor, jobID)
	assert.ErrorIs(t, err, domain.ErrArtifactNotReady)
}

func TestExport_UnknownJob(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	bookingRepo := mocks.NewBookingRepository(t)
	authz := mocks.NewAuthorizer(t)
	status := newMemStatusStore()
	artifacts := export.NewStore(t.TempDir())
	pool := worker.NewPool(worker.DefaultConfig(), logger.NewNop())

	svc := services.NewExportService(bookingRepo, status, artifacts, pool, authz, logger.NewNop())

	authz.On("Authorize", mock.Anything, actor, mock.AnythingOfType("string"), "booking").Return(true)

	job, err := svc.GetStatus(ctx, actor, "no-such-job")
	assert.NoError(t, err)
	assert.Equal(t, domain.ExportNotFound, job.Status)

	_, _, err = svc.Download(ctx, actor, "no-such-job")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_SnapshotFailureMarksJobFailed(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	bookingRepo := mocks.NewBookingRepository(t)
	authz := mocks.NewAuthorizer(t)
	status := newMemStatusStore()
	artifacts := export.NewStore(t.TempDir())
	pool := worker.NewPool(worker.DefaultConfig(), logger.NewNop())

	svc := services.NewExportService(bookingRepo, status, artifacts, pool, authz, logger.NewNop())

	bookingRepo.On("ListByUser", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	jobID := uuid.NewString()
	assert.NoError(t, status.SetQueued(ctx, jobID))

	svc.Execute(ctx, jobID, domain.BookingFilter{UserID: actor})

	job, err := status.Get(ctx, jobID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, job.Status)
	assert.Contains(t, job.Error, "db down")
	assert.Empty(t, job.Artifact)
}

func TestExport_QueueFull(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	bookingRepo := mocks.NewBookingRepository(t)
	authz := mocks.NewAuthorizer(t)
	status := newMemStatusStore()
	artifacts := export.NewStore(t.TempDir())
	queue := mocks.NewExportQueue(t)

	svc := services.NewExportService(bookingRepo, status, artifacts, queue, authz, logger.NewNop())

	authz.On("Authorize", mock.Anything, actor, "export", "booking").Return(true)
	queue.On("Enqueue", mock.AnythingOfType("string"), mock.Anything).Return(worker.ErrQueueFull)

	jobID, err := svc.Submit(ctx, actor, domain.BookingFilter{})

	assert.Empty(t, jobID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
