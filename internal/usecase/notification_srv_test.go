package usecase

import (
	"context"
	"testing"

	"waitwise/internal/data/entity"
	"waitwise/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestGetInbox(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.store.PushNotification("first", "msg", "✅", entity.NotificationSystem)
	second := env.store.PushNotification("second", "msg", "✅", entity.NotificationSystem)

	inbox, err := env.service.Notification.GetInbox(ctx)
	require.NoError(t, err)
	require.Len(t, inbox.Notifications, 2)
	assert.Equal(t, "second", inbox.Notifications[0].Title)
	assert.Equal(t, 2, inbox.UnreadCount)

	require.NoError(t, env.service.Notification.MarkRead(ctx, second.ID))
	// Missing ids are tolerated
	require.NoError(t, env.service.Notification.MarkRead(ctx, uuid.New()))

	inbox, err = env.service.Notification.GetInbox(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inbox.UnreadCount)

	require.NoError(t, env.service.Notification.MarkAllRead(ctx))
	inbox, _ = env.service.Notification.GetInbox(ctx)
	assert.Equal(t, 0, inbox.UnreadCount)

	require.NoError(t, env.service.Notification.ClearInbox(ctx))
	inbox, _ = env.service.Notification.GetInbox(ctx)
	assert.Empty(t, inbox.Notifications)
}

func TestSetPreference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	prefs, err := env.service.Notification.SetPreference(ctx, request.UpdatePreferenceRequest{
		Key:     "waitThreshold",
		Enabled: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, prefs.WaitThreshold)
	assert.True(t, prefs.SlotConfirmed, "other switches untouched")

	_, err = env.service.Notification.SetPreference(ctx, request.UpdatePreferenceRequest{
		Key:     "bogus",
		Enabled: boolPtr(true),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preference key")
}

func TestSetThreshold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, minutes := range []int{5, 30, 60} {
		prefs, err := env.service.Notification.SetThreshold(ctx, request.UpdateThresholdRequest{Minutes: minutes})
		require.NoError(t, err)
		assert.Equal(t, minutes, prefs.ThresholdMinutes)
	}

	for _, minutes := range []int{4, 61, -1, 0} {
		_, err := env.service.Notification.SetThreshold(ctx, request.UpdateThresholdRequest{Minutes: minutes})
		require.Error(t, err, "minutes=%d", minutes)
		assert.Contains(t, err.Error(), "invalid threshold")
	}
}
