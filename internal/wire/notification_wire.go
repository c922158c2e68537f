package wire

import (
	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"
	"waitwise/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	store *state.Store,
	log *zap.Logger,
) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.AuthSession(store, log))

		r.Get("/", notificationHandler.GetInbox)
		r.Delete("/", notificationHandler.ClearInbox)
		r.Put("/read-all", notificationHandler.MarkAllRead)
		r.Put("/{id}/read", notificationHandler.MarkRead)

		r.Get("/preferences", notificationHandler.GetPreferences)
		r.Put("/preferences", notificationHandler.UpdatePreference)
		r.Put("/threshold", notificationHandler.UpdateThreshold)
	})
}
