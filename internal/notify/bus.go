// Package notify implements the in-process notification bus: an ordered
// collection of transient messages with timed, cancellable dismissal.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for display.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// DefaultDuration is the auto-dismiss timeout applied by EnqueueDefault.
const DefaultDuration = 4 * time.Second

// DurationInfinite disables auto-dismissal; the entry stays until
// explicitly dismissed.
const DurationInfinite time.Duration = -1

// Notification is one transient message in the stack.
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Kind      Kind          `json:"kind"`
	CreatedAt time.Time     `json:"created_at"`
	Duration  time.Duration `json:"duration"`
}

// Bus is the ordered notification collection for one visitor.
//
// Enqueue order is display order regardless of durations; dismissal never
// reorders remaining entries. All methods are safe for concurrent use.
type Bus struct {
	mu      sync.Mutex
	entries []Notification
	timers  map[string]*time.Timer
	subs    []*busSubscriber
	nextSub int
	closed  bool
}

// busSubscriber keeps registration order; callbacks fire oldest first.
type busSubscriber struct {
	id int
	fn func()
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{
		timers: make(map[string]*time.Timer),
	}
}

// Enqueue appends a notification and schedules its removal if the duration
// is finite. Message content is not validated; an empty string is rendered
// as-is. Enqueue never fails and IDs never collide, even for a batch of
// enqueues in the same instant.
func (b *Bus) Enqueue(message string, kind Kind, duration time.Duration) string {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return n.ID
	}
	b.entries = append(b.entries, n)
	if duration != DurationInfinite {
		id := n.ID
		b.timers[id] = time.AfterFunc(duration, func() {
			b.Dismiss(id)
		})
	}
	subs := b.snapshotSubs()
	b.mu.Unlock()

	notifyAll(subs)
	return n.ID
}

// EnqueueDefault enqueues with the default 4s auto-dismiss timeout.
func (b *Bus) EnqueueDefault(message string, kind Kind) string {
	return b.Enqueue(message, kind, DefaultDuration)
}

// Dismiss removes an entry. Dismissing an unknown or already-removed id is a
// no-op; any pending auto-dismiss timer for the id is cancelled so it cannot
// fire after removal.
func (b *Bus) Dismiss(id string) {
	b.mu.Lock()
	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}

	removed := false
	for i, n := range b.entries {
		if n.ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			removed = true
			break
		}
	}

	var subs []func()
	if removed {
		subs = b.snapshotSubs()
	}
	b.mu.Unlock()

	notifyAll(subs)
}

// List returns the current stack in insertion order, oldest first.
func (b *Bus) List() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, len(b.entries))
	copy(out, b.entries)
	return out
}

// OnChange registers a callback fired after every change to the collection
// (enqueue or effective dismiss). Callbacks run in registration order. The
// returned function unsubscribes without affecting others.
func (b *Bus) OnChange(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSub++
	sub := &busSubscriber{id: b.nextSub, fn: fn}
	b.subs = append(b.subs, sub)

	id := sub.id
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, candidate := range b.subs {
			if candidate.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Close cancels every outstanding timer and detaches all subscribers. No
// callback fires after Close returns (a timer that already fired and is
// blocked on the mutex will find its entry handling short-circuited by the
// closed flag having emptied the subscriber set).
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.subs = nil
	b.closed = true
	b.entries = nil
}

func (b *Bus) snapshotSubs() []func() {
	out := make([]func(), 0, len(b.subs))
	for _, sub := range b.subs {
		out = append(out, sub.fn)
	}
	return out
}

func notifyAll(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
