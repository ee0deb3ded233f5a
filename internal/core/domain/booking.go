package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending  BookingStatus = "PENDING"
	BookingApproved BookingStatus = "APPROVED"
	BookingPaid     BookingStatus = "PAID"
	BookingCanceled BookingStatus = "CANCELED"
)

// CanTransitionTo reports whether the lifecycle graph allows moving to target.
// PAID and CANCELED are terminal; PAID is reachable only from APPROVED.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingPending:
		return target == BookingApproved || target == BookingCanceled
	case BookingApproved:
		return target == BookingPaid || target == BookingCanceled
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingPaid || s == BookingCanceled
}

type Booking struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FieldID     uuid.UUID
	FieldName   string
	BookingDate time.Time
	StartHour   int
	EndHour     int
	BasePrice   float64
	FinalPrice  float64
	Status      BookingStatus
	Version     int
	CreatedAt   time.Time
	Vouchers    []Voucher
}

// FinalPrice applies voucher discounts to a base price, floored at zero.
func FinalPrice(basePrice float64, vouchers []Voucher) float64 {
	final := basePrice
	for _, v := range vouchers {
		final -= v.Value
	}

	if final < 0 {
		return 0
	}

	return final
}

// BookingFilter scopes history listings and export snapshots to one user,
// optionally narrowed by status and date range.
type BookingFilter struct {
	UserID   uuid.UUID
	Status   *BookingStatus
	DateFrom *time.Time
	DateTo   *time.Time
}
