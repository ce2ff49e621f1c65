// Package realtime holds the process-scoped cursor state backing the
// polling endpoints. Cursors reset on process restart and are never
// persisted; running multiple server processes behind a load balancer is
// not supported by this design.
package realtime

import "sync"

type Tracker struct {
	mu               sync.RWMutex
	lastJobID        uint
	lastNotification map[uint]uint // userID -> last notification ID
}

func NewTracker() *Tracker {
	return &Tracker{lastNotification: make(map[uint]uint)}
}

// PublishJob records a newly created job ID. IDs are monotonic, so the
// max wins even if publishes race.
func (t *Tracker) PublishJob(id uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id > t.lastJobID {
		t.lastJobID = id
	}
}

func (t *Tracker) LastJobID() uint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastJobID
}

// PublishNotification records a newly created notification ID for a user.
func (t *Tracker) PublishNotification(userID, id uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id > t.lastNotification[userID] {
		t.lastNotification[userID] = id
	}
}

func (t *Tracker) LastNotificationID(userID uint) uint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastNotification[userID]
}
