package usecase

import (
	"waitwise/internal/data/state"

	"go.uber.org/zap"
)

// Service bundles every domain service over the shared state store.
type Service struct {
	Auth         AuthService
	Center       CenterService
	Booking      BookingService
	Review       ReviewService
	Notification NotificationService
	Admin        AdminService
}

func NewService(store *state.Store, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(store, log),
		Center:       NewCenterService(store, log),
		Booking:      NewBookingService(store, log),
		Review:       NewReviewService(store, log),
		Notification: NewNotificationService(store, log),
		Admin:        NewAdminService(store, log),
	}
}
