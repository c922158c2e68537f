package wire

import (
	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"
	"waitwise/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	store *state.Store,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(store, log))
		r.Use(middleware.Admin(store, log))

		r.Put("/center/queue", adminHandler.UpdateQueue)
		r.Put("/center/status", adminHandler.ToggleStatus)
		r.Get("/bookings", adminHandler.GetAllBookings)
	})
}
