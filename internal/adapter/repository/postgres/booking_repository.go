package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/srgjo27/scalable_field/internal/core/domain"
)

// Slot exclusivity lives in the excl_active_slot exclusion constraint on
// bookings (field, date, overlapping hour range, status <> 'CANCELED') and
// voucher attachment exclusivity in the uniq_active_voucher partial unique
// index on booking_vouchers. A lost creation race surfaces as a 23P01 or
// 23505, never as two active bookings.
type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO bookings (id, user_id, field_id, booking_date, start_hour, end_hour, base_price, final_price, status, version, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.ExecContext(ctx, queryHeader,
		booking.ID,
		booking.UserID,
		booking.FieldID,
		booking.BookingDate,
		booking.StartHour,
		booking.EndHour,
		booking.BasePrice,
		booking.FinalPrice,
		booking.Status,
		booking.Version,
		booking.CreatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return fmt.Errorf("%w: slot already booked", domain.ErrFieldUnavailable)
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	queryVoucher := `
	INSERT INTO booking_vouchers (booking_id, voucher_id)
	VALUES ($1, $2)
	`

	stmt, err := tx.PrepareContext(ctx, queryVoucher)
	if err != nil {
		return fmt.Errorf("failed to prepare voucher statement: %w", err)
	}

	defer stmt.Close()

	for _, v := range booking.Vouchers {
		// A 23505 here is the uniq_active_voucher index: the voucher is
		// already attached to another active booking.
		if _, err := stmt.ExecContext(ctx, booking.ID, v.ID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: voucher %s already attached", domain.ErrInvalidVoucher, v.Code)
			}

			return fmt.Errorf("failed to attach voucher %s: %w", v.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT b.id, b.user_id, b.field_id, f.name, b.booking_date, b.start_hour, b.end_hour,
		b.base_price, b.final_price, b.status, b.version, b.created_at
	FROM bookings b
	JOIN fields f ON f.id = b.field_id
	WHERE b.id = $1
	`

	var booking domain.Booking
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.FieldID,
		&booking.FieldName,
		&booking.BookingDate,
		&booking.StartHour,
		&booking.EndHour,
		&booking.BasePrice,
		&booking.FinalPrice,
		&booking.Status,
		&booking.Version,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
		}

		return nil, err
	}

	vouchers, err := r.attachedVouchers(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Vouchers = vouchers

	return &booking, nil
}

// UpdateStatus transitions only when the booking is still in from. Zero rows
// affected means another writer got there first. A transition to CANCELED
// also releases the attachment rows in the same transaction, so the
// uniq_active_voucher index frees the vouchers atomically with the cancel.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	query := `
	UPDATE bookings
	SET status = $1, version = version + 1
	WHERE id = $2 AND status = $3
	`

	result, err := tx.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: booking %s left %s concurrently", domain.ErrInvalidTransition, id, from)
	}

	if to == domain.BookingCanceled {
		queryRelease := `
		UPDATE booking_vouchers
		SET released = TRUE
		WHERE booking_id = $1
		`

		if _, err := tx.ExecContext(ctx, queryRelease, id); err != nil {
			return fmt.Errorf("failed to release voucher attachments: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByUser(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, fmt.Sprintf("b.user_id = $%d", len(args)+1))
	args = append(args, filter.UserID)

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}

	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("b.booking_date >= $%d", len(args)+1))
		args = append(args, *filter.DateFrom)
	}

	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("b.booking_date <= $%d", len(args)+1))
		args = append(args, *filter.DateTo)
	}

	query := fmt.Sprintf(`
	SELECT b.id, b.user_id, b.field_id, f.name, b.booking_date, b.start_hour, b.end_hour,
		b.base_price, b.final_price, b.status, b.version, b.created_at
	FROM bookings b
	JOIN fields f ON f.id = b.field_id
	WHERE %s
	ORDER BY b.booking_date DESC, b.start_hour
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.FieldID,
			&b.FieldName,
			&b.BookingDate,
			&b.StartHour,
			&b.EndHour,
			&b.BasePrice,
			&b.FinalPrice,
			&b.Status,
			&b.Version,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) attachedVouchers(ctx context.Context, bookingID uuid.UUID) ([]domain.Voucher, error) {
	query := `
	SELECT v.id, v.code, v.name, v.value, v.expired_date, v.status, v.quantity, v.version
	FROM vouchers v
	JOIN booking_vouchers bv ON bv.voucher_id = v.id
	WHERE bv.booking_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanVouchers(rows)
}
