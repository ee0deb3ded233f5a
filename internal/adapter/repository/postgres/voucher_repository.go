package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/srgjo27/scalable_field/internal/core/domain"
)

type VoucherRepository struct {
	db *sql.DB
}

func NewVoucherRepository(db *sql.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

func (r *VoucherRepository) Create(ctx context.Context, voucher *domain.Voucher) error {
	query := `
	INSERT INTO vouchers (id, code, name, value, expired_date, status, quantity, version)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		voucher.ID,
		voucher.Code,
		voucher.Name,
		voucher.Value,
		voucher.ExpiredDate,
		voucher.Status,
		voucher.Quantity,
		voucher.Version,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: voucher code already exists", domain.ErrConflict)
	}

	return err
}

func (r *VoucherRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Voucher, error) {
	query := `
	SELECT id, code, name, value, expired_date, status, quantity, version
	FROM vouchers
	WHERE id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanVouchers(rows)
}

func (r *VoucherRepository) ListAvailable(ctx context.Context, limit int) ([]domain.Voucher, error) {
	query := `
	SELECT id, code, name, value, expired_date, status, quantity, version
	FROM vouchers
	WHERE status = 'AVAILABLE' AND quantity > 0 AND expired_date >= CURRENT_DATE
	ORDER BY expired_date
	LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanVouchers(rows)
}

// HasActiveAttachment is a pre-check; the authoritative guard is the
// uniq_active_voucher partial unique index checked at insert time.
func (r *VoucherRepository) HasActiveAttachment(ctx context.Context, voucherID uuid.UUID) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1
		FROM booking_vouchers
		WHERE voucher_id = $1 AND NOT released
	)
	`

	var attached bool
	if err := r.db.QueryRowContext(ctx, query, voucherID).Scan(&attached); err != nil {
		return false, err
	}

	return attached, nil
}

// Consume is the atomic decrement-if-positive. The WHERE clause re-verifies
// redeemability at persist time and the CASE flips the status to EXPIRED in
// the same statement, so two racing bookings can never both take the last
// unit.
func (r *VoucherRepository) Consume(ctx context.Context, voucherID uuid.UUID) error {
	query := `
	UPDATE vouchers
	SET quantity = quantity - 1,
		status = CASE WHEN quantity - 1 = 0 THEN 'EXPIRED' ELSE status END,
		version = version + 1
	WHERE id = $1
		AND status = 'AVAILABLE'
		AND quantity > 0
		AND expired_date >= CURRENT_DATE
	`

	result, err := r.db.ExecContext(ctx, query, voucherID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: voucher %s is expired or exhausted", domain.ErrInvalidVoucher, voucherID)
	}

	return nil
}

// Release compensates a Consume on a failed booking save. The status is
// re-derived: a date-expired voucher stays expired.
func (r *VoucherRepository) Release(ctx context.Context, voucherID uuid.UUID) error {
	query := `
	UPDATE vouchers
	SET quantity = quantity + 1,
		status = CASE WHEN expired_date >= CURRENT_DATE THEN 'AVAILABLE' ELSE status END,
		version = version + 1
	WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, voucherID)

	return err
}

func scanVouchers(rows *sql.Rows) ([]domain.Voucher, error) {
	var vouchers []domain.Voucher
	for rows.Next() {
		var v domain.Voucher
		if err := rows.Scan(
			&v.ID,
			&v.Code,
			&v.Name,
			&v.Value,
			&v.ExpiredDate,
			&v.Status,
			&v.Quantity,
			&v.Version,
		); err != nil {
			return nil, err
		}

		vouchers = append(vouchers, v)
	}

	return vouchers, rows.Err()
}
