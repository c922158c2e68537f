package wire

import (
	"net/http"

	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"
	"waitwise/internal/usecase"
	"waitwise/pkg/middleware"
	"waitwise/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router    *chi.Mux
	Simulator *usecase.Simulator
}

// Wiring builds services, handlers and the router over the shared
// state store.
func Wiring(store *state.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(store, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, store, logger)

	return &App{
		Router:    router,
		Simulator: usecase.NewSimulator(store, logger, config.Simulation.TickInterval()),
	}
}

func setupRouter(handler *adaptor.Handler, store *state.Store, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, store, logger)
	wireCenter(r, handler.Center, store, logger)
	wireBooking(r, handler.Booking, store, logger)
	wireReview(r, handler.Review, store, logger)
	wireNotification(r, handler.Notification, store, logger)
	wireAdmin(r, handler.Admin, store, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
