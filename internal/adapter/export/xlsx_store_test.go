package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	exportstore "github.com/srgjo27/scalable_field/internal/adapter/export"
	"github.com/srgjo27/scalable_field/internal/core/domain"
)

func testBookings(n int) []domain.Booking {
	bookings := make([]domain.Booking, 0, n)
	for i := 0; i < n; i++ {
		bookings = append(bookings, domain.Booking{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			FieldID:     uuid.New(),
			FieldName:   "Field B",
			BookingDate: time.Date(2026, 9, 1+i, 0, 0, 0, 0, time.UTC),
			StartHour:   9,
			EndHour:     11,
			BasePrice:   120,
			FinalPrice:  100,
			Status:      domain.BookingPaid,
			CreatedAt:   time.Now(),
		})
	}
	return bookings
}

func TestWriteBookings(t *testing.T) {
	dir := t.TempDir()
	store := exportstore.NewStore(dir)

	var lastDone, lastTotal int
	location, err := store.WriteBookings(context.Background(), "job-1", testBookings(3), func(done, total int) {
		assert.GreaterOrEqual(t, done, lastDone)
		lastDone, lastTotal = done, total
	})

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bookings_job-1.xlsx"), location)
	assert.Equal(t, 3, lastDone)
	assert.Equal(t, 3, lastTotal)

	f, err := excelize.OpenFile(location)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	assert.NoError(t, err)

	// Header plus one row per booking.
	if assert.Len(t, rows, 4) {
		assert.Equal(t, "Booking ID", rows[0][0])
		assert.Equal(t, "Field B", rows[1][1])
		assert.Equal(t, "PAID", rows[1][7])
	}
}

func TestWriteBookings_EmptySnapshot(t *testing.T) {
	store := exportstore.NewStore(t.TempDir())

	location, err := store.WriteBookings(context.Background(), "job-2", nil, func(done, total int) {})

	assert.NoError(t, err)
	assert.FileExists(t, location)
}

func TestOpenAndRemove(t *testing.T) {
	store := exportstore.NewStore(t.TempDir())

	location, err := store.WriteBookings(context.Background(), "job-3", testBookings(1), nil)
	assert.NoError(t, err)
	assert.FileExists(t, location)

	reader, err := store.Open("job-3")
	assert.NoError(t, err)
	assert.NoError(t, reader.Close())

	assert.NoError(t, store.Remove("job-3"))
	_, err = os.Stat(location)
	assert.True(t, os.IsNotExist(err))

	// Removing a missing artifact is not an error.
	assert.NoError(t, store.Remove("job-3"))
}

func TestWriteBookings_CanceledContext(t *testing.T) {
	store := exportstore.NewStore(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.WriteBookings(ctx, "job-4", testBookings(2), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
