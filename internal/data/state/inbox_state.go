package state

import (
	"waitwise/internal/data/entity"

	"github.com/google/uuid"
)

// PushNotification prepends a notification to the inbox, evicting the
// oldest entries beyond the capacity.
func (s *Store) PushNotification(title, message, icon string, category entity.NotificationCategory) entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &entity.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Icon:      icon,
		Category:  category,
		CreatedAt: s.now(),
	}
	s.inbox = append([]*entity.Notification{n}, s.inbox...)
	if len(s.inbox) > s.inboxCap {
		s.inbox = s.inbox[:s.inboxCap]
	}
	return *n
}

// Inbox returns the notifications, newest first.
func (s *Store) Inbox() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Notification, 0, len(s.inbox))
	for _, n := range s.inbox {
		out = append(out, *n)
	}
	return out
}

// UnreadCount reports how many inbox entries are unread.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.inbox {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read. Unknown ids are a no-op and
// report false.
func (s *Store) MarkRead(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.inbox {
		if n.ID == id {
			n.Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flags every inbox entry as read.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.inbox {
		n.Read = true
	}
}

// ClearInbox drops all notifications.
func (s *Store) ClearInbox() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbox = nil
}

// Preferences returns the current notification preference set.
func (s *Store) Preferences() entity.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetPreference toggles one category switch.
func (s *Store) SetPreference(key entity.PreferenceKey, enabled bool) (entity.NotificationPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case entity.PrefSlotConfirmed:
		s.prefs.SlotConfirmed = enabled
	case entity.PrefQueueAlmostDone:
		s.prefs.QueueAlmostDone = enabled
	case entity.PrefCenterStatus:
		s.prefs.CenterStatus = enabled
	case entity.PrefWaitThreshold:
		s.prefs.WaitThreshold = enabled
	default:
		return s.prefs, ErrUnknownPreference
	}
	return s.prefs, nil
}

// SetThreshold updates the wait-drop alert threshold. Range checking
// happens at the service boundary.
func (s *Store) SetThreshold(minutes int) entity.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.ThresholdMinutes = minutes
	return s.prefs
}
