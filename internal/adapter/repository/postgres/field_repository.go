package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/scalable_field/internal/core/domain"
)

// FieldRepository is the local adapter for the field catalog collaborator.
type FieldRepository struct {
	db *sql.DB
}

func NewFieldRepository(db *sql.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

func (r *FieldRepository) GetField(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	query := `
	SELECT id, name, price_per_hour
	FROM fields
	WHERE id = $1
	`

	var field domain.Field
	err := r.db.QueryRowContext(ctx, query, id).Scan(&field.ID, &field.Name, &field.PricePerHour)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: field %s", domain.ErrNotFound, id)
		}

		return nil, err
	}

	return &field, nil
}

// IsSlotAvailable is a pre-check only; the authoritative guard is the
// excl_active_slot exclusion constraint checked at insert time. Both layers
// treat any overlapping active range as a conflict.
func (r *FieldRepository) IsSlotAvailable(ctx context.Context, fieldID uuid.UUID, date time.Time, startHour, endHour int) (bool, error) {
	query := `
	SELECT NOT EXISTS (
		SELECT 1
		FROM bookings
		WHERE field_id = $1
			AND booking_date = $2
			AND start_hour < $4
			AND end_hour > $3
			AND status <> 'CANCELED'
	)
	`

	var available bool
	if err := r.db.QueryRowContext(ctx, query, fieldID, date, startHour, endHour).Scan(&available); err != nil {
		return false, err
	}

	return available, nil
}
