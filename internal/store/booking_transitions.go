package store

import "github.com/01moynul/autoshop-golang/internal/models"

// bookingTransitions lists where each status may go next.
// completed and cancelled are final.
var bookingTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
