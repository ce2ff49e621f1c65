package realtime

import (
	"sync"
	"testing"
)

func TestTrackerJobCursor(t *testing.T) {
	tr := NewTracker()

	if got := tr.LastJobID(); got != 0 {
		t.Fatalf("fresh tracker should report 0, got %d", got)
	}

	tr.PublishJob(3)
	tr.PublishJob(1) // stale publish must not move the cursor back
	if got := tr.LastJobID(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestTrackerNotificationCursorPerUser(t *testing.T) {
	tr := NewTracker()

	tr.PublishNotification(1, 10)
	tr.PublishNotification(2, 20)

	if got := tr.LastNotificationID(1); got != 10 {
		t.Fatalf("user 1: expected 10, got %d", got)
	}
	if got := tr.LastNotificationID(2); got != 20 {
		t.Fatalf("user 2: expected 20, got %d", got)
	}
	if got := tr.LastNotificationID(3); got != 0 {
		t.Fatalf("unknown user: expected 0, got %d", got)
	}
}

func TestTrackerConcurrentPublish(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			tr.PublishJob(id)
			tr.PublishNotification(id%4, id)
		}(uint(i))
	}
	wg.Wait()

	if got := tr.LastJobID(); got != 100 {
		t.Fatalf("expected max job ID 100, got %d", got)
	}
}
