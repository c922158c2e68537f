package usecase

import (
	"context"
	"fmt"
	"time"

	"waitwise/internal/data/entity"
	"waitwise/internal/data/state"

	"go.uber.org/zap"
)

// Simulator drives the queue simulation. Every interval it advances all
// centers by one step and turns the resulting transitions into inbox
// alerts.
type Simulator struct {
	store    *state.Store
	log      *zap.Logger
	interval time.Duration
}

func NewSimulator(store *state.Store, log *zap.Logger, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Simulator{
		store:    store,
		log:      log.With(zap.String("service", "simulator")),
		interval: interval,
	}
}

// Run ticks until the context is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("simulation started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("simulation stopped")
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step advances the simulation once and fires any edge-triggered
// alerts.
func (s *Simulator) Step() {
	transitions := s.store.Tick()
	s.evaluate(transitions, s.store.Preferences())
}

// evaluate fires alerts for transitions that cross an edge. Both
// triggers require a strict crossing: a center already at or below the
// boundary stays quiet until it climbs back out and drops again.
func (s *Simulator) evaluate(transitions []state.QueueTransition, prefs entity.NotificationPreferences) {
	for _, t := range transitions {
		if prefs.WaitThreshold &&
			t.PrevWait > prefs.ThresholdMinutes && t.Wait <= prefs.ThresholdMinutes {
			s.store.PushNotification(
				fmt.Sprintf("⚡ Wait Dropped — %s", t.CenterName),
				fmt.Sprintf("Wait is now %s, below your %dm threshold!",
					entity.FormatWait(t.Wait), prefs.ThresholdMinutes),
				"⚡", entity.NotificationThreshold)
		}

		if prefs.QueueAlmostDone && t.PrevQueue > 1 && t.Queue == 1 {
			s.store.PushNotification(
				fmt.Sprintf("🔔 You're Next! — %s", t.CenterName),
				"Only 1 person ahead. Get ready!",
				"🔔", entity.NotificationQueue)
		}
	}
}
