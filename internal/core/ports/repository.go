package ports

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_field/internal/core/domain"
)

type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.Voucher) error
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Voucher, error)
	ListAvailable(ctx context.Context, limit int) ([]domain.Voucher, error)
	HasActiveAttachment(ctx context.Context, voucherID uuid.UUID) (bool, error)

	// Consume is an atomic decrement-if-positive. It fails with
	// domain.ErrInvalidVoucher when the voucher is expired, exhausted or
	// date-expired, and recomputes the status in the same statement.
	Consume(ctx context.Context, voucherID uuid.UUID) error

	// Release compensates a Consume on a failed booking save.
	Release(ctx context.Context, voucherID uuid.UUID) error
}

type BookingRepository interface {
	// Create persists a booking with its voucher attachments in one
	// transaction. A lost slot race fails with domain.ErrFieldUnavailable.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	// UpdateStatus is a status-guarded transition; it fails with
	// domain.ErrInvalidTransition when the booking is no longer in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error
	ListByUser(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
}

type FieldCatalog interface {
	GetField(ctx context.Context, id uuid.UUID) (*domain.Field, error)
	IsSlotAvailable(ctx context.Context, fieldID uuid.UUID, date time.Time, startHour, endHour int) (bool, error)
}

// Notifier delivers status-change notifications. Delivery is fire-and-forget:
// callers log failures and never propagate them.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, booking *domain.Booking) error
}

type Authorizer interface {
	Authorize(ctx context.Context, actor uuid.UUID, action, resource string) bool
}

// JobStatusStore tracks export job state keyed by job id. The worker is the
// only writer; requesters read through Get, which reports a purged or unknown
// id as domain.ExportNotFound instead of an error.
type JobStatusStore interface {
	SetQueued(ctx context.Context, jobID string) error
	SetRunning(ctx context.Context, jobID string) error
	PublishProgress(ctx context.Context, jobID string, pct int) error
	SetCompleted(ctx context.Context, jobID, artifact string) error
	SetFailed(ctx context.Context, jobID, cause string) error
	Get(ctx context.Context, jobID string) (*domain.ExportJob, error)
}

// ExportArtifacts materializes and serves export files keyed by job id.
type ExportArtifacts interface {
	WriteBookings(ctx context.Context, jobID string, bookings []domain.Booking, progress func(done, total int)) (string, error)
	Open(jobID string) (io.ReadCloser, error)
	Remove(jobID string) error
}

// ExportQueue accepts asynchronous export work items.
type ExportQueue interface {
	Enqueue(jobID string, filter domain.BookingFilter) error
}
