package wire

import (
	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"
	"waitwise/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	store *state.Store,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(store, log))

		r.Post("/api/centers/{id}/reviews", reviewHandler.CreateReview)
	})
}
