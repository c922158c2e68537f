package wire

import (
	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"
	"waitwise/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	store *state.Store,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(store, log))

		r.Post("/api/booking", bookingHandler.CreateBooking)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
		r.Post("/api/bookings/{id}/rebook", bookingHandler.RebookBooking)
	})
}
