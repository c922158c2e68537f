package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is an append-only rating left against a center. Reviews are
// never edited or removed.
type Review struct {
	ID        uuid.UUID
	CenterID  uuid.UUID
	Author    string
	Rating    int // 1-5
	Comment   *string
	CreatedAt time.Time
}
