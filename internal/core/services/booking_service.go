package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/core/ports"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
)

type CreateBookingRequest struct {
	UserID     string   `json:"user_id"`
	FieldID    string   `json:"field_id"`
	Date       string   `json:"date"`
	StartHour  int      `json:"start_hour"`
	EndHour    int      `json:"end_hour"`
	VoucherIDs []string `json:"voucher_ids"`
}

type CreateBookingResponse struct {
	BookingID  string  `json:"booking_id"`
	BasePrice  float64 `json:"base_price"`
	FinalPrice float64 `json:"final_price"`
	Status     string  `json:"status"`
}

// BookingService owns the booking aggregate and its lifecycle. Creation
// follows a consume-then-persist order with compensating releases, so a
// booking row never survives a failed voucher or slot race.
type BookingService struct {
	bookings ports.BookingRepository
	catalog  ports.FieldCatalog
	ledger   *VoucherLedger
	notifier ports.Notifier
	authz    ports.Authorizer
	log      *logger.Logger

	// repeatCancelNoOp makes a second cancel on a canceled booking a silent
	// success instead of an ErrInvalidTransition. It avoids double
	// notifications from impatient clients; see NewBookingService.
	repeatCancelNoOp bool
}

type BookingOption func(*BookingService)

// WithStrictRepeatCancel makes cancel-on-canceled fail instead of no-op.
func WithStrictRepeatCancel() BookingOption {
	return func(s *BookingService) {
		s.repeatCancelNoOp = false
	}
}

func NewBookingService(
	bookings ports.BookingRepository,
	catalog ports.FieldCatalog,
	ledger *VoucherLedger,
	notifier ports.Notifier,
	authz ports.Authorizer,
	log *logger.Logger,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		bookings:         bookings,
		catalog:          catalog,
		ledger:           ledger,
		notifier:         notifier,
		authz:            authz,
		log:              log,
		repeatCancelNoOp: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	fieldID, err := uuid.Parse(req.FieldID)
	if err != nil {
		return nil, errors.New("invalid field id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid booking date")
	}

	if req.StartHour < 0 || req.EndHour > 24 || req.StartHour >= req.EndHour {
		return nil, errors.New("invalid time range")
	}

	voucherIDs := make([]uuid.UUID, 0, len(req.VoucherIDs))
	for _, raw := range req.VoucherIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid voucher id")
		}

		voucherIDs = append(voucherIDs, id)
	}

	if !s.authz.Authorize(ctx, userID, "create", "booking") {
		return nil, domain.ErrForbidden
	}

	field, err := s.catalog.GetField(ctx, fieldID)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s", domain.ErrNotFound, fieldID)
	}

	available, err := s.catalog.IsSlotAvailable(ctx, fieldID, date, req.StartHour, req.EndHour)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}

	if !available {
		return nil, domain.ErrFieldUnavailable
	}

	vouchers, err := s.ledger.ValidateAndReserve(ctx, voucherIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVoucherRejected, err)
	}

	if !s.CheckVouchers(vouchers) {
		return nil, fmt.Errorf("%w: voucher set no longer redeemable", domain.ErrVoucherRejected)
	}

	// Consume before persisting, mirroring the resolved order of the slot
	// index check. Every consumed voucher is released again if anything
	// after it fails.
	var consumed []domain.Voucher
	for _, v := range vouchers {
		if err := s.ledger.Consume(ctx, v); err != nil {
			s.rollbackConsumed(ctx, consumed)
			return nil, fmt.Errorf("%w: voucher %s: %v", domain.ErrVoucherRejected, v.Code, err)
		}

		consumed = append(consumed, v)
	}

	basePrice := field.SlotPrice(req.StartHour, req.EndHour)

	booking := &domain.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		FieldID:     fieldID,
		FieldName:   field.Name,
		BookingDate: date,
		StartHour:   req.StartHour,
		EndHour:     req.EndHour,
		BasePrice:   basePrice,
		FinalPrice:  domain.FinalPrice(basePrice, vouchers),
		Status:      domain.BookingPending,
		Version:     1,
		CreatedAt:   time.Now(),
		Vouchers:    vouchers,
	}

	// Two races can still be lost at the insert itself: the slot exclusion
	// constraint and the active-attachment unique index. Both hand back the
	// consumed vouchers.
	if err := s.bookings.Create(ctx, booking); err != nil {
		s.rollbackConsumed(ctx, consumed)

		if errors.Is(err, domain.ErrFieldUnavailable) || errors.Is(err, domain.ErrInvalidVoucher) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &CreateBookingResponse{
		BookingID:  booking.ID.String(),
		BasePrice:  booking.BasePrice,
		FinalPrice: booking.FinalPrice,
		Status:     string(booking.Status),
	}, nil
}

// CheckVouchers is the pure validation predicate over an already resolved
// voucher set. The persist-time guard is the ledger's conditional decrement.
func (s *BookingService) CheckVouchers(vouchers []domain.Voucher) bool {
	today := time.Now()
	for _, v := range vouchers {
		if !v.IsRedeemable(today) {
			return false
		}
	}

	return true
}

// Approve moves a pending booking to approved.
func (s *BookingService) Approve(ctx context.Context, actor, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, actor, bookingID, "approve", domain.BookingApproved)
}

// Pay records the settlement outcome on an approved booking. Payment itself
// happens at an external collaborator.
func (s *BookingService) Pay(ctx context.Context, actor, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, actor, bookingID, "pay", domain.BookingPaid)
}

// Cancel moves a pending or approved booking to canceled and dispatches one
// status-change notification. Notification failures are logged, never
// returned.
func (s *BookingService) Cancel(ctx context.Context, actor, bookingID uuid.UUID) (*domain.Booking, error) {
	if !s.authz.Authorize(ctx, actor, "cancel", "booking") {
		return nil, domain.ErrForbidden
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
	}

	if booking.Status == domain.BookingCanceled && s.repeatCancelNoOp {
		return booking, nil
	}

	if !booking.Status.CanTransitionTo(domain.BookingCanceled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, domain.BookingCanceled)
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, booking.Status, domain.BookingCanceled); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingCanceled

	if err := s.notifier.NotifyStatusChange(ctx, booking); err != nil {
		s.log.Warnw("status change notification failed",
			"booking_id", bookingID.String(),
			"status", booking.Status,
			"error", err,
		)
	}

	return booking, nil
}

// History lists the actor's bookings, newest date first.
func (s *BookingService) History(ctx context.Context, actor uuid.UUID, filter domain.BookingFilter) ([]domain.Booking, error) {
	if !s.authz.Authorize(ctx, actor, "history", "booking") {
		return nil, domain.ErrForbidden
	}

	filter.UserID = actor

	return s.bookings.ListByUser(ctx, filter)
}

func (s *BookingService) transition(ctx context.Context, actor, bookingID uuid.UUID, action string, target domain.BookingStatus) (*domain.Booking, error) {
	if !s.authz.Authorize(ctx, actor, action, "booking") {
		return nil, domain.ErrForbidden
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, target)
	}

	// The status-guarded UPDATE serializes concurrent attempts; a lost race
	// comes back as ErrInvalidTransition, not a second transition.
	if err := s.bookings.UpdateStatus(ctx, bookingID, booking.Status, target); err != nil {
		return nil, err
	}

	booking.Status = target

	return booking, nil
}

func (s *BookingService) rollbackConsumed(ctx context.Context, consumed []domain.Voucher) {
	for _, v := range consumed {
		if err := s.ledger.Release(ctx, v); err != nil {
			s.log.Errorw("failed to release voucher after aborted booking",
				"voucher_id", v.ID.String(),
				"error", err,
			)
		}
	}
}
