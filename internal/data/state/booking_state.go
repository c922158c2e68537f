package state

import (
	"waitwise/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book records a booking against a center. The wait snapshot is taken
// from the queue as it stood before this booking joined it, then the
// queue grows by one and a seat is taken while any remain. The service
// layer gates on status and availability; this only mutates.
func (s *Store) Book(centerID uuid.UUID, slot string, userID uuid.UUID) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.centerLocked(centerID)
	if c == nil {
		return entity.Booking{}, ErrCenterNotFound
	}

	waitBefore := c.EstimatedWait()
	c.Queue++
	c.Crowd = entity.CrowdLevelFor(c.Queue)
	if c.SlotsBooked < c.Slots {
		c.SlotsBooked++
	}

	b := &entity.Booking{
		ID:            uuid.New(),
		CenterID:      c.ID,
		CenterName:    c.Name,
		CenterIcon:    c.Icon,
		Slot:          slot,
		BookedAt:      s.now(),
		WaitAtBooking: waitBefore,
		UserID:        userID,
		Status:        entity.BookingConfirmed,
	}
	s.bookings = append([]*entity.Booking{b}, s.bookings...)

	s.log.Info("booking recorded",
		zap.String("booking_id", b.ID.String()),
		zap.String("center", c.Name),
		zap.Int("queue", c.Queue))
	return *b, nil
}

// CancelBooking marks a booking cancelled and releases its queue spot
// and seat, both floored at zero. A booking already past pending or
// confirmed is rejected with the current record attached so callers can
// report its status.
func (s *Store) CancelBooking(id uuid.UUID) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bookingLocked(id)
	if b == nil {
		return entity.Booking{}, ErrBookingNotFound
	}
	if !b.Status.Cancellable() {
		return *b, ErrBookingNotCancellable
	}

	b.Status = entity.BookingCancelled

	// The center may have been removed in a future variant; cancel
	// still succeeds against the booking record alone.
	if c := s.centerLocked(b.CenterID); c != nil {
		if c.Queue > 0 {
			c.Queue--
		}
		c.Crowd = entity.CrowdLevelFor(c.Queue)
		if c.SlotsBooked > 0 {
			c.SlotsBooked--
		}
	}

	s.log.Info("booking cancelled", zap.String("booking_id", b.ID.String()))
	return *b, nil
}

// BookingByID returns a copy of the booking, if present.
func (s *Store) BookingByID(id uuid.UUID) (entity.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bookingLocked(id)
	if b == nil {
		return entity.Booking{}, false
	}
	return *b, true
}

// BookingsByUser returns the user's bookings, newest first.
func (s *Store) BookingsByUser(userID uuid.UUID) []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

// Bookings returns every booking across all users, newest first.
func (s *Store) Bookings() []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out
}
