// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package presence

import (
	"sync"
	"time"

	"github.com/danielhkuo/pingbot/models"
)

// DefaultPingableWindow is how long after their last activity a user can
// still be reached by a lightweight mention.
const DefaultPingableWindow = 7 * 24 * time.Hour

// Tracker follows room membership and activity from a stream of events. It is
// safe for concurrent use: transports record events from their read loop
// while the dispatcher classifies.
type Tracker struct {
	mu       sync.RWMutex
	present  models.IDSet
	pingable models.IDSet
	lastSeen map[models.UserID]time.Time
	window   time.Duration
	now      func() time.Time
}

func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultPingableWindow
	}
	return &Tracker{
		present:  models.NewIDSet(),
		pingable: models.NewIDSet(),
		lastSeen: make(map[models.UserID]time.Time),
		window:   window,
		now:      time.Now,
	}
}

// Seed sets the initial room state, e.g. from a room's user list.
func (t *Tracker) Seed(present, pingable []models.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.present = models.NewIDSet(present...)
	t.pingable = models.NewIDSet(pingable...)
}

func (t *Tracker) Entered(id models.UserID, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.present.Add(id)
	t.touch(id, at)
}

func (t *Tracker) Left(id models.UserID, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.present, id)
	t.touch(id, at)
}

// Active records activity that doesn't change membership, like a message.
func (t *Tracker) Active(id models.UserID, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch(id, at)
}

// touch must be called with mu held.
func (t *Tracker) touch(id models.UserID, at time.Time) {
	if at.After(t.lastSeen[id]) {
		t.lastSeen[id] = at
	}
}

func (t *Tracker) Present() models.IDSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.present.Union()
}

// Pingable returns present users, seeded pingable users, and everyone active
// within the pingable window.
func (t *Tracker) Pingable() models.IDSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := t.present.Union(t.pingable)
	cutoff := t.now().Add(-t.window)
	for id, seen := range t.lastSeen {
		if seen.After(cutoff) {
			out.Add(id)
		}
	}
	return out
}

func (t *Tracker) LastActivity(id models.UserID) time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastSeen[id]
}
