package state

import (
	"waitwise/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueueTransition captures one center's movement across a single tick.
// The simulation service inspects these to decide which alerts fire.
type QueueTransition struct {
	CenterID   uuid.UUID
	CenterName string
	PrevQueue  int
	Queue      int
	PrevWait   int // minutes
	Wait       int // minutes
}

// Centers returns a snapshot of the full catalog.
func (s *Store) Centers() []entity.Center {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Center, 0, len(s.centers))
	for _, c := range s.centers {
		out = append(out, *c)
	}
	return out
}

// CenterByID returns a copy of the center, if present.
func (s *Store) CenterByID(id uuid.UUID) (entity.Center, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.centerLocked(id)
	if c == nil {
		return entity.Center{}, false
	}
	return *c, true
}

// SetQueueLength overwrites a center's queue. Negative values clamp to
// zero and the crowd level is recomputed in the same step.
func (s *Store) SetQueueLength(id uuid.UUID, queue int) (entity.Center, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.centerLocked(id)
	if c == nil {
		return entity.Center{}, ErrCenterNotFound
	}
	if queue < 0 {
		queue = 0
	}
	c.Queue = queue
	c.Crowd = entity.CrowdLevelFor(queue)
	return *c, nil
}

// ToggleStatus flips a center between open and closed and returns the
// updated record.
func (s *Store) ToggleStatus(id uuid.UUID) (entity.Center, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.centerLocked(id)
	if c == nil {
		return entity.Center{}, ErrCenterNotFound
	}
	if c.Status == entity.CenterOpen {
		c.Status = entity.CenterClosed
	} else {
		c.Status = entity.CenterOpen
	}
	return *c, nil
}

// Tick advances every center by one simulation step. Each queue moves
// by at most one: with probability 0.45 it shifts, up or down with
// equal odds, otherwise it holds. The previously observed wait and
// queue are reported alongside the new values and then re-recorded for
// the next step.
func (s *Store) Tick() []QueueTransition {
	s.mu.Lock()
	defer s.mu.Unlock()

	transitions := make([]QueueTransition, 0, len(s.centers))
	for _, c := range s.centers {
		delta := 0
		if s.rng.Float64() < 0.45 {
			if s.rng.Float64() < 0.5 {
				delta = 1
			} else {
				delta = -1
			}
		}
		queue := c.Queue + delta
		if queue < 0 {
			queue = 0
		}
		c.Queue = queue
		c.Crowd = entity.CrowdLevelFor(queue)
		wait := c.EstimatedWait()

		prevQueue, ok := s.prevQueue[c.ID]
		if !ok {
			prevQueue = queue
		}
		prevWait, ok := s.prevWait[c.ID]
		if !ok {
			prevWait = wait
		}

		transitions = append(transitions, QueueTransition{
			CenterID:   c.ID,
			CenterName: c.Name,
			PrevQueue:  prevQueue,
			Queue:      queue,
			PrevWait:   prevWait,
			Wait:       wait,
		})

		s.prevQueue[c.ID] = queue
		s.prevWait[c.ID] = wait
	}

	s.log.Debug("tick applied", zap.Int("centers", len(transitions)))
	return transitions
}
