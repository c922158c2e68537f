package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waitwise/internal/data/entity"
	"waitwise/internal/data/state"
	"waitwise/internal/dto/request"
	"waitwise/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetInbox(ctx context.Context) (*response.InboxResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
	ClearInbox(ctx context.Context) error
	GetPreferences(ctx context.Context) (*response.PreferencesResponse, error)
	SetPreference(ctx context.Context, req request.UpdatePreferenceRequest) (*response.PreferencesResponse, error)
	SetThreshold(ctx context.Context, req request.UpdateThresholdRequest) (*response.PreferencesResponse, error)
}

type notificationService struct {
	store *state.Store
	log   *zap.Logger
}

func NewNotificationService(store *state.Store, log *zap.Logger) NotificationService {
	return &notificationService{
		store: store,
		log:   log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetInbox(ctx context.Context) (*response.InboxResponse, error) {
	now := time.Now()
	inbox := s.store.Inbox()

	resp := &response.InboxResponse{
		Notifications: make([]response.NotificationResponse, 0, len(inbox)),
	}
	for _, n := range inbox {
		if !n.Read {
			resp.UnreadCount++
		}
		resp.Notifications = append(resp.Notifications, response.ToNotificationResponse(n, now))
	}
	return resp, nil
}

// MarkRead tolerates unknown ids; an entry may have been evicted from
// the capped inbox between listing and acting.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	s.store.MarkRead(id)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	s.store.MarkAllRead()
	return nil
}

func (s *notificationService) ClearInbox(ctx context.Context) error {
	s.store.ClearInbox()
	return nil
}

func (s *notificationService) GetPreferences(ctx context.Context) (*response.PreferencesResponse, error) {
	resp := response.ToPreferencesResponse(s.store.Preferences())
	return &resp, nil
}

func (s *notificationService) SetPreference(ctx context.Context, req request.UpdatePreferenceRequest) (*response.PreferencesResponse, error) {
	prefs, err := s.store.SetPreference(entity.PreferenceKey(req.Key), *req.Enabled)
	if err != nil {
		if errors.Is(err, state.ErrUnknownPreference) {
			return nil, fmt.Errorf("invalid preference key %q", req.Key)
		}
		return nil, err
	}

	s.log.Info("preference updated",
		zap.String("key", req.Key),
		zap.Bool("enabled", *req.Enabled))
	resp := response.ToPreferencesResponse(prefs)
	return &resp, nil
}

func (s *notificationService) SetThreshold(ctx context.Context, req request.UpdateThresholdRequest) (*response.PreferencesResponse, error) {
	if req.Minutes < entity.ThresholdMin || req.Minutes > entity.ThresholdMax {
		return nil, fmt.Errorf("invalid threshold: must be between %d and %d minutes",
			entity.ThresholdMin, entity.ThresholdMax)
	}

	prefs := s.store.SetThreshold(req.Minutes)
	s.log.Info("threshold updated", zap.Int("minutes", req.Minutes))
	resp := response.ToPreferencesResponse(prefs)
	return &resp, nil
}
