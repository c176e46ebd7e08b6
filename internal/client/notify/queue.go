// Package notify manages transient user notifications (toasts).
//
// Each toast lives until its expiry timer fires or it is dismissed
// explicitly, whichever happens first. Toasts are independent: their
// timers carry no ordering guarantee relative to each other.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is the toast lifetime used when Add receives a
// non-positive duration.
const DefaultDuration = 5 * time.Second

// Severity classifies a toast for presentation purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Toast is one transient notification.
type Toast struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration
	CreatedAt time.Time
}

// AddedFunc observes toasts as they are queued. Invoked outside the
// queue's lock; implementations may call back into the queue.
type AddedFunc func(Toast)

// Queue owns the toast list. All access goes through its methods; there
// is no external mutation of queue internals.
type Queue struct {
	onAdded AddedFunc

	mu     sync.Mutex
	toasts []Toast
	timers map[string]*time.Timer
	seq    uint64
	closed bool
}

// NewQueue builds an empty queue. onAdded may be nil.
func NewQueue(onAdded AddedFunc) *Queue {
	return &Queue{
		onAdded: onAdded,
		timers:  make(map[string]*time.Timer),
	}
}

// Add queues a toast and schedules exactly one expiry that removes it
// after duration (DefaultDuration when non-positive). Returns the toast id,
// or "" if the queue has been closed.
//
// Ids combine a monotonic sequence number with a random component so that
// rapid successive calls can never collide, and an id is never reused.
func (q *Queue) Add(message string, severity Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}

	q.seq++
	id := fmt.Sprintf("%d-%s", q.seq, uuid.NewString())

	toast := Toast{
		ID:        id,
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
	q.toasts = append(q.toasts, toast)
	q.timers[id] = time.AfterFunc(duration, func() { q.Remove(id) })
	q.mu.Unlock()

	if q.onAdded != nil {
		q.onAdded(toast)
	}
	return id
}

// Remove dismisses a toast and cancels its pending expiry. Removing an
// unknown or already-removed id is a no-op.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	timer, ok := q.timers[id]
	if !ok {
		return
	}
	timer.Stop()
	delete(q.timers, id)

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			break
		}
	}
}

// Toasts returns a snapshot of the queued toasts in creation order.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Close cancels every outstanding timer and rejects further Adds.
// Expiries already in flight become no-ops.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
}
