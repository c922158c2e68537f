// Package state holds every domain collection behind a single mutex.
// Each exported operation is one complete read-modify-write, so the
// four write paths (tick, booking, admin, review) never observe partial
// state. Nothing here persists; the process starts from the seed
// catalog every time.
package state

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"waitwise/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCenterNotFound        = errors.New("center not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("booking not cancellable")
	ErrUnknownPreference     = errors.New("unknown preference key")
	ErrEmailTaken            = errors.New("email already registered")
	ErrSessionInvalid        = errors.New("session invalid or expired")
)

type Config struct {
	InboxCapacity    int
	DefaultThreshold int // minutes
	SessionTTL       time.Duration
	Rand             *rand.Rand       // nil seeds from the clock
	Now              func() time.Time // nil uses time.Now
}

type Store struct {
	mu  sync.Mutex
	log *zap.Logger
	rng *rand.Rand
	now func() time.Time

	inboxCap   int
	sessionTTL time.Duration

	centers  []*entity.Center
	bookings []*entity.Booking // newest first
	reviews  map[uuid.UUID][]*entity.Review
	inbox    []*entity.Notification // newest first
	prefs    entity.NotificationPreferences

	usersByID    map[uuid.UUID]*entity.User
	usersByEmail map[string]*entity.User
	sessions     map[uuid.UUID]*entity.Session

	// Previously observed values per center, recorded at the end of
	// every tick and consulted at the start of the next for the
	// edge-triggered notification conditions.
	prevWait  map[uuid.UUID]int
	prevQueue map[uuid.UUID]int
}

func NewStore(cfg Config, log *zap.Logger) *Store {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	inboxCap := cfg.InboxCapacity
	if inboxCap <= 0 {
		inboxCap = 50
	}
	threshold := cfg.DefaultThreshold
	if threshold < entity.ThresholdMin || threshold > entity.ThresholdMax {
		threshold = 15
	}
	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}

	s := &Store{
		log:        log.With(zap.String("component", "state")),
		rng:        rng,
		now:        now,
		inboxCap:   inboxCap,
		sessionTTL: sessionTTL,
		reviews:    make(map[uuid.UUID][]*entity.Review),
		prefs: entity.NotificationPreferences{
			SlotConfirmed:    true,
			QueueAlmostDone:  true,
			CenterStatus:     true,
			WaitThreshold:    true,
			ThresholdMinutes: threshold,
		},
		usersByID:    make(map[uuid.UUID]*entity.User),
		usersByEmail: make(map[string]*entity.User),
		sessions:     make(map[uuid.UUID]*entity.Session),
		prevWait:     make(map[uuid.UUID]int),
		prevQueue:    make(map[uuid.UUID]int),
	}

	s.seed()

	// Record the initial waits so the first tick only fires edge
	// triggers on genuine transitions.
	for _, c := range s.centers {
		s.prevWait[c.ID] = c.EstimatedWait()
		s.prevQueue[c.ID] = c.Queue
	}

	return s
}

// centerLocked returns the live center record; callers must hold mu.
func (s *Store) centerLocked(id uuid.UUID) *entity.Center {
	for _, c := range s.centers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// bookingLocked returns the live booking record; callers must hold mu.
func (s *Store) bookingLocked(id uuid.UUID) *entity.Booking {
	for _, b := range s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}
