package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/srgjo27/scalable_field/internal/core/domain"
)

const sheetName = "Bookings"

var columns = []string{"Booking ID", "Field", "Date", "Start", "End", "Base Price", "Final Price", "Status", "Created At"}

// Store materializes booking exports as xlsx files under a single directory,
// one file per job id.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// WriteBookings serializes the snapshot into an xlsx artifact, reporting
// progress after every row. The file only appears on disk once fully written.
func (s *Store) WriteBookings(ctx context.Context, jobID string, bookings []domain.Booking, progress func(done, total int)) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}

		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return "", err
		}
	}

	total := len(bookings)
	for i, b := range bookings {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		row := i + 2
		values := []interface{}{
			b.ID.String(),
			b.FieldName,
			b.BookingDate.Format("2006-01-02"),
			b.StartHour,
			b.EndHour,
			b.BasePrice,
			b.FinalPrice,
			string(b.Status),
			b.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return "", err
			}

			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", err
			}
		}

		if progress != nil {
			progress(i+1, total)
		}
	}

	path := s.path(jobID)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export artifact: %w", err)
	}

	if progress != nil {
		progress(total, total)
	}

	return path, nil
}

func (s *Store) Open(jobID string) (io.ReadCloser, error) {
	return os.Open(s.path(jobID))
}

func (s *Store) Remove(jobID string) error {
	err := os.Remove(s.path(jobID))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (s *Store) path(jobID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("bookings_%s.xlsx", jobID))
}
