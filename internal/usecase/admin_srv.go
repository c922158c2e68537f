package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"waitwise/internal/data/entity"
	"waitwise/internal/data/state"
	"waitwise/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	SetQueueLength(ctx context.Context, adminID uuid.UUID, queue int) (*response.CenterResponse, error)
	ToggleStatus(ctx context.Context, adminID uuid.UUID) (*response.CenterResponse, error)
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type adminService struct {
	store *state.Store
	log   *zap.Logger
}

func NewAdminService(store *state.Store, log *zap.Logger) AdminService {
	return &adminService{
		store: store,
		log:   log.With(zap.String("service", "admin")),
	}
}

// centerFor resolves the single center an admin account controls.
func (s *adminService) centerFor(adminID uuid.UUID) (uuid.UUID, error) {
	user, ok := s.store.UserByID(adminID)
	if !ok || user.Role != entity.RoleAdmin {
		return uuid.Nil, errors.New("unauthorized")
	}
	if user.CenterID == nil {
		return s.store.DefaultCenterID(), nil
	}
	return *user.CenterID, nil
}

// SetQueueLength overrides the queue at the admin's center. No
// notification fires for manual adjustments; the next tick's triggers
// pick up the change.
func (s *adminService) SetQueueLength(ctx context.Context, adminID uuid.UUID, queue int) (*response.CenterResponse, error) {
	centerID, err := s.centerFor(adminID)
	if err != nil {
		return nil, err
	}

	c, err := s.store.SetQueueLength(centerID, queue)
	if err != nil {
		return nil, fmt.Errorf("center %s not found", centerID)
	}

	s.log.Info("queue overridden",
		zap.String("center", c.Name),
		zap.Int("queue", c.Queue))
	resp := response.ToCenterResponse(c)
	return &resp, nil
}

func (s *adminService) ToggleStatus(ctx context.Context, adminID uuid.UUID) (*response.CenterResponse, error) {
	centerID, err := s.centerFor(adminID)
	if err != nil {
		return nil, err
	}

	c, err := s.store.ToggleStatus(centerID)
	if err != nil {
		return nil, fmt.Errorf("center %s not found", centerID)
	}

	if s.store.Preferences().CenterStatus {
		message := "Closed — please choose another."
		if c.Status == entity.CenterOpen {
			message = "Reopened — slots available."
		}
		s.store.PushNotification(
			fmt.Sprintf("🏢 %s is now %s", c.Name, strings.ToUpper(string(c.Status))),
			message,
			"🏢", entity.NotificationStatus)
	}

	s.log.Info("status toggled",
		zap.String("center", c.Name),
		zap.String("status", string(c.Status)))
	resp := response.ToCenterResponse(c)
	return &resp, nil
}

func (s *adminService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	return response.ToBookingResponses(s.store.Bookings()), nil
}
