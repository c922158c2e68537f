package entity

type PreferenceKey string

const (
	PrefSlotConfirmed   PreferenceKey = "slotConfirmed"
	PrefQueueAlmostDone PreferenceKey = "queueAlmostDone"
	PrefCenterStatus    PreferenceKey = "centerStatus"
	PrefWaitThreshold   PreferenceKey = "waitThreshold"
)

// Threshold slider bounds, in minutes.
const (
	ThresholdMin = 5
	ThresholdMax = 60
)

// NotificationPreferences holds the per-category enable flags plus the
// single global wait-time alert threshold. Session-scoped, no
// persistence.
type NotificationPreferences struct {
	SlotConfirmed    bool
	QueueAlmostDone  bool
	CenterStatus     bool
	WaitThreshold    bool
	ThresholdMinutes int
}

// Enabled reports the flag for a preference key; unknown keys are
// disabled.
func (p NotificationPreferences) Enabled(key PreferenceKey) bool {
	switch key {
	case PrefSlotConfirmed:
		return p.SlotConfirmed
	case PrefQueueAlmostDone:
		return p.QueueAlmostDone
	case PrefCenterStatus:
		return p.CenterStatus
	case PrefWaitThreshold:
		return p.WaitThreshold
	default:
		return false
	}
}
