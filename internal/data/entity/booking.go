package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Cancellable reports whether a booking in this status may still be
// cancelled. cancelled and completed are terminal.
func (s BookingStatus) Cancellable() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Booking is a user's reservation of a time slot at a center. CenterName,
// CenterIcon and WaitAtBooking are snapshots taken at booking time and
// never change afterwards, even if the center does.
type Booking struct {
	ID            uuid.UUID
	CenterID      uuid.UUID
	CenterName    string
	CenterIcon    string
	Slot          string
	BookedAt      time.Time
	WaitAtBooking int // minutes
	UserID        uuid.UUID
	Status        BookingStatus
}
