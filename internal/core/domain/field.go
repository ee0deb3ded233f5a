package domain

import "github.com/google/uuid"

type Field struct {
	ID           uuid.UUID
	Name         string
	PricePerHour float64
}

// SlotPrice prices a reservation covering [startHour, endHour).
func (f *Field) SlotPrice(startHour, endHour int) float64 {
	hours := endHour - startHour
	if hours < 1 {
		hours = 1
	}

	return f.PricePerHour * float64(hours)
}
