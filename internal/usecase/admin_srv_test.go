package usecase

import (
	"context"
	"testing"

	"waitwise/internal/data/entity"
	"waitwise/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSetQueueLength(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	center, err := env.service.Admin.SetQueueLength(ctx, env.admin.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, "QuickFix Auto Care", center.Name, "admin scoped to their own center")
	assert.Equal(t, 9, center.Queue)
	assert.Equal(t, "high", center.Crowd)

	// Manual overrides never notify
	assert.Empty(t, env.store.Inbox())

	center, err = env.service.Admin.SetQueueLength(ctx, env.admin.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, center.Queue)
	assert.Equal(t, "low", center.Crowd)
}

func TestAdminToggleStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	center, err := env.service.Admin.ToggleStatus(ctx, env.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", center.Status)

	inbox := env.store.Inbox()
	require.Len(t, inbox, 1)
	assert.Equal(t, "🏢 QuickFix Auto Care is now CLOSED", inbox[0].Title)
	assert.Equal(t, "Closed — please choose another.", inbox[0].Message)
	assert.Equal(t, entity.NotificationStatus, inbox[0].Category)

	center, err = env.service.Admin.ToggleStatus(ctx, env.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "open", center.Status)

	inbox = env.store.Inbox()
	require.Len(t, inbox, 2)
	assert.Equal(t, "🏢 QuickFix Auto Care is now OPEN", inbox[0].Title)
	assert.Equal(t, "Reopened — slots available.", inbox[0].Message)
}

func TestAdminToggleStatusPreferenceGated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.store.SetPreference(entity.PrefCenterStatus, false)
	require.NoError(t, err)

	_, err = env.service.Admin.ToggleStatus(ctx, env.admin.ID)
	require.NoError(t, err)
	assert.Empty(t, env.store.Inbox())

	// Re-enabling and toggling again emits exactly one
	_, err = env.store.SetPreference(entity.PrefCenterStatus, true)
	require.NoError(t, err)

	center, err := env.service.Admin.ToggleStatus(ctx, env.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "open", center.Status)
	require.Len(t, env.store.Inbox(), 1)
	assert.Equal(t, "🏢 QuickFix Auto Care is now OPEN", env.store.Inbox()[0].Title)
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Admin.SetQueueLength(ctx, env.user.ID, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")

	_, err = env.service.Admin.ToggleStatus(ctx, env.user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestAdminGetAllBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quickfix := env.centerByName(t, "QuickFix Auto Care")

	_, err := env.service.Booking.CreateBooking(ctx, env.user.ID, request.CreateBookingRequest{
		CenterID: quickfix.ID.String(),
		Slot:     "2:30 PM",
	})
	require.NoError(t, err)
	_, err = env.service.Booking.CreateBooking(ctx, env.admin.ID, request.CreateBookingRequest{
		CenterID: quickfix.ID.String(),
		Slot:     "3:00 PM",
	})
	require.NoError(t, err)

	bookings, err := env.service.Admin.GetAllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 2, "admin sees bookings from every user")
}
