package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatedWait(t *testing.T) {
	tests := []struct {
		name  string
		queue int
		avg   int
		want  int
	}{
		{"empty queue", 0, 15, 0},
		{"single person", 1, 30, 30},
		{"typical queue", 4, 15, 60},
		{"long queue", 11, 20, 220},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimatedWait(tt.queue, tt.avg))

			c := Center{Queue: tt.queue, AvgServiceTime: tt.avg}
			assert.Equal(t, tt.want, c.EstimatedWait())
		})
	}
}

func TestFormatWait(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "No Wait"},
		{1, "~1m"},
		{59, "~59m"},
		{60, "~1h 0m"},
		{75, "~1h 15m"},
		{220, "~3h 40m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWait(tt.minutes))
		})
	}
}

func TestCrowdLevelFor(t *testing.T) {
	tests := []struct {
		queue int
		want  CrowdLevel
	}{
		{0, CrowdLow},
		{3, CrowdLow},
		{4, CrowdMedium},
		{8, CrowdMedium},
		{9, CrowdHigh},
		{50, CrowdHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CrowdLevelFor(tt.queue), "queue=%d", tt.queue)
	}
}

func TestWaitSeverityFor(t *testing.T) {
	tests := []struct {
		minutes int
		want    WaitSeverity
	}{
		{0, WaitSeverityLow},
		{29, WaitSeverityLow},
		{30, WaitSeverityMedium},
		{89, WaitSeverityMedium},
		{90, WaitSeverityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WaitSeverityFor(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestSlotsLeft(t *testing.T) {
	c := Center{Slots: 12, SlotsBooked: 8}
	assert.Equal(t, 4, c.SlotsLeft())

	full := Center{Slots: 10, SlotsBooked: 10}
	assert.Equal(t, 0, full.SlotsLeft())
}

func TestBookingStatusCancellable(t *testing.T) {
	assert.True(t, BookingPending.Cancellable())
	assert.True(t, BookingConfirmed.Cancellable())
	assert.False(t, BookingCancelled.Cancellable())
	assert.False(t, BookingCompleted.Cancellable())
}

func TestPreferencesEnabled(t *testing.T) {
	p := NotificationPreferences{SlotConfirmed: true, WaitThreshold: false}

	assert.True(t, p.Enabled(PrefSlotConfirmed))
	assert.False(t, p.Enabled(PrefWaitThreshold))
	assert.False(t, p.Enabled(PreferenceKey("bogus")))
}
