package wire

import (
	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCenter(
	r chi.Router,
	centerHandler *adaptor.CenterHandler,
	store *state.Store,
	log *zap.Logger,
) {
	// All center reads are public; the dashboard renders before sign-in
	r.Get("/api/centers", centerHandler.GetCenters)
	r.Get("/api/centers/{id}", centerHandler.GetCenter)
	r.Get("/api/centers/{id}/reviews", centerHandler.GetCenterReviews)
	r.Get("/api/stats", centerHandler.GetStats)
}
