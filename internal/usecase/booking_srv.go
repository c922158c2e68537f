package usecase

import (
	"context"
	"errors"
	"fmt"

	"waitwise/internal/data/entity"
	"waitwise/internal/data/state"
	"waitwise/internal/dto/request"
	"waitwise/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error)
	RebookBooking(ctx context.Context, userID, oldID uuid.UUID) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	store *state.Store
	log   *zap.Logger
}

func NewBookingService(store *state.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: store,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req request.CreateBookingRequest) (*response.BookingResponse, error) {
	centerID, err := uuid.Parse(req.CenterID)
	if err != nil {
		return nil, errors.New("invalid center id")
	}
	return s.book(centerID, req.Slot, userID)
}

func (s *bookingService) book(centerID uuid.UUID, slot string, userID uuid.UUID) (*response.BookingResponse, error) {
	c, ok := s.store.CenterByID(centerID)
	if !ok {
		return nil, fmt.Errorf("center %s not found", centerID)
	}
	if c.Status != entity.CenterOpen {
		return nil, errors.New("cannot book a closed center")
	}
	if c.SlotsLeft() <= 0 {
		return nil, errors.New("cannot book, no slots left")
	}

	booking, err := s.store.Book(centerID, slot, userID)
	if err != nil {
		return nil, fmt.Errorf("center %s not found", centerID)
	}

	if s.store.Preferences().SlotConfirmed {
		s.store.PushNotification(
			"✅ Slot Confirmed!",
			fmt.Sprintf("Booked at %s for %s. Est. wait: %s.",
				booking.CenterName, booking.Slot, entity.FormatWait(booking.WaitAtBooking)),
			"✅", entity.NotificationBooking)
	}

	resp := response.ToBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.store.CancelBooking(id)
	if err != nil {
		if errors.Is(err, state.ErrBookingNotFound) {
			return nil, fmt.Errorf("booking %s not found", id)
		}
		return nil, fmt.Errorf("cannot cancel booking with status %s", booking.Status)
	}

	// Cancellations always land in the inbox regardless of preference
	// settings.
	s.store.PushNotification(
		"❌ Slot Cancelled",
		"Your slot has been cancelled. You can re-book anytime.",
		"❌", entity.NotificationCancel)

	resp := response.ToBookingResponse(booking)
	return &resp, nil
}

// RebookBooking books a fresh slot at the same center as a previous
// booking. The old record is left untouched.
func (s *bookingService) RebookBooking(ctx context.Context, userID, oldID uuid.UUID) (*response.BookingResponse, error) {
	old, ok := s.store.BookingByID(oldID)
	if !ok {
		return nil, fmt.Errorf("booking %s not found", oldID)
	}
	if old.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return s.book(old.CenterID, old.Slot, userID)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	return response.ToBookingResponses(s.store.BookingsByUser(userID)), nil
}
