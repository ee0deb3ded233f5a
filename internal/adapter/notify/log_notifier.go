package notify

import (
	"context"

	"github.com/srgjo27/scalable_field/internal/core/domain"
	"github.com/srgjo27/scalable_field/internal/platform/logger"
)

// LogNotifier records status changes to the log. Real delivery (email) lives
// in an external collaborator behind the same port.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyStatusChange(ctx context.Context, booking *domain.Booking) error {
	n.log.Infow("booking status changed",
		"booking_id", booking.ID.String(),
		"user_id", booking.UserID.String(),
		"status", booking.Status,
	)

	return nil
}
