package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationCategory string

const (
	NotificationSystem    NotificationCategory = "system"
	NotificationBooking   NotificationCategory = "booking"
	NotificationCancel    NotificationCategory = "cancel"
	NotificationStatus    NotificationCategory = "status"
	NotificationThreshold NotificationCategory = "threshold"
	NotificationQueue     NotificationCategory = "queue"
)

// Notification is one inbox entry. Only the Read flag mutates after
// creation.
type Notification struct {
	ID        uuid.UUID
	Title     string
	Message   string
	Icon      string
	Category  NotificationCategory
	CreatedAt time.Time
	Read      bool
}
