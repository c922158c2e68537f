package wire

import (
	"waitwise/internal/adaptor"
	"waitwise/internal/data/state"
	"waitwise/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	store *state.Store,
	log *zap.Logger,
) {
	// Public
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/register", authHandler.Register)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(store, log))

		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
