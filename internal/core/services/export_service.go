package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/core/ports"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
)

// ExportService submits booking exports, executes them on the worker pool and
// answers the polling read path. The worker is the only writer of job state;
// Submit writes the initial QUEUED record before the job can start running.
type ExportService struct {
	bookings  ports.BookingRepository
	status    ports.JobStatusStore
	artifacts ports.ExportArtifacts
	queue     ports.ExportQueue
	authz     ports.Authorizer
	log       *logger.Logger
}

func NewExportService(
	bookings ports.BookingRepository,
	status ports.JobStatusStore,
	artifacts ports.ExportArtifacts,
	queue ports.ExportQueue,
	authz ports.Authorizer,
	log *logger.Logger,
) *ExportService {
	return &ExportService{
		bookings:  bookings,
		status:    status,
		artifacts: artifacts,
		queue:     queue,
		authz:     authz,
		log:       log,
	}
}

// Submit allocates a job id, records it as queued and hands the filter
// snapshot to the worker pool. It returns immediately; completion is observed
// by polling GetStatus.
func (s *ExportService) Submit(ctx context.Context, actor uuid.UUID, filter domain.BookingFilter) (string, error) {
	if !s.authz.Authorize(ctx, actor, "export", "booking") {
		return "", domain.ErrForbidden
	}

	filter.UserID = actor
	jobID := uuid.NewString()

	if err := s.status.SetQueued(ctx, jobID); err != nil {
		return "", fmt.Errorf("failed to record export job: %w", err)
	}

	if err := s.queue.Enqueue(jobID, filter); err != nil {
		if ferr := s.status.SetFailed(ctx, jobID, "export queue is full"); ferr != nil {
			s.log.Errorw("failed to mark unqueued export as failed", "job_id", jobID, "error", ferr)
		}

		return "", fmt.Errorf("%w: export queue is full", domain.ErrConflict)
	}

	s.log.Infow("export job submitted", "job_id", jobID, "user_id", actor.String())

	return jobID, nil
}

// Execute is the worker body. It reads one snapshot of the matching bookings,
// streams them into the artifact and publishes monotone progress. Any failure
// marks the job failed and removes the partial artifact; failures are
// terminal.
func (s *ExportService) Execute(ctx context.Context, jobID string, filter domain.BookingFilter) {
	log := s.log.With("job_id", jobID)

	if err := s.status.SetRunning(ctx, jobID); err != nil {
		log.Errorw("failed to mark export running", "error", err)
		return
	}

	bookings, err := s.bookings.ListByUser(ctx, filter)
	if err != nil {
		s.fail(ctx, log, jobID, fmt.Errorf("snapshot query failed: %w", err))
		return
	}

	highWater := atomic.NewInt64(0)
	publish := func(done, total int) {
		pct := 100
		if total > 0 {
			pct = done * 100 / total
		}

		// Progress never goes backwards while the job is running.
		if int64(pct) <= highWater.Load() {
			return
		}
		highWater.Store(int64(pct))

		if err := s.status.PublishProgress(ctx, jobID, pct); err != nil {
			log.Warnw("failed to publish export progress", "error", err)
		}
	}

	location, err := s.artifacts.WriteBookings(ctx, jobID, bookings, publish)
	if err != nil {
		if rerr := s.artifacts.Remove(jobID); rerr != nil {
			log.Warnw("failed to remove partial export artifact", "error", rerr)
		}

		s.fail(ctx, log, jobID, err)
		return
	}

	if err := s.status.SetCompleted(ctx, jobID, location); err != nil {
		log.Errorw("failed to mark export completed", "error", err)
		return
	}

	log.Infow("export job completed", "rows", len(bookings), "artifact", location)
}

// GetStatus answers the polling read path. An unknown or purged job id comes
// back with status NOT_FOUND, not an error.
func (s *ExportService) GetStatus(ctx context.Context, actor uuid.UUID, jobID string) (*domain.ExportJob, error) {
	if !s.authz.Authorize(ctx, actor, "export_status", "booking") {
		return nil, domain.ErrForbidden
	}

	return s.status.Get(ctx, jobID)
}

// Download serves the artifact of a completed job.
func (s *ExportService) Download(ctx context.Context, actor uuid.UUID, jobID string) (io.ReadCloser, string, error) {
	if !s.authz.Authorize(ctx, actor, "export_download", "booking") {
		return nil, "", domain.ErrForbidden
	}

	job, err := s.status.Get(ctx, jobID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read export job: %w", err)
	}

	switch job.Status {
	case domain.ExportCompleted:
	case domain.ExportNotFound:
		return nil, "", fmt.Errorf("%w: export job %s", domain.ErrNotFound, jobID)
	default:
		return nil, "", fmt.Errorf("%w: job %s is %s", domain.ErrArtifactNotReady, jobID, job.Status)
	}

	reader, err := s.artifacts.Open(jobID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open export artifact: %w", err)
	}

	return reader, fmt.Sprintf("bookings_%s.xlsx", jobID), nil
}

func (s *ExportService) fail(ctx context.Context, log *logger.Logger, jobID string, cause error) {
	log.Errorw("export job failed", "error", cause)

	if err := s.status.SetFailed(ctx, jobID, cause.Error()); err != nil {
		log.Errorw("failed to mark export failed", "error", err)
	}
}
