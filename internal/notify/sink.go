// Package notify buffers newly unlocked achievements and level-ups for
// display. Entries expire after a fixed window, mirroring the toast
// auto-dismiss in the UI; expiry is evaluated on read rather than by a
// background timer.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays active before it is
// dropped on the next read.
const DefaultTTL = 5 * time.Second

// Notification is one display event.
type Notification struct {
	ID          string
	Name        string
	Description string
	Timestamp   time.Time
}

// Sink is the ephemeral notification buffer. Safe for concurrent reads
// from a rendering goroutine while the engine pushes.
type Sink struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []Notification
}

// NewSink creates a sink with the given TTL; zero means DefaultTTL.
func NewSink(ttl time.Duration) *Sink {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Sink{ttl: ttl}
}

// Push appends a notification stamped at now.
func (s *Sink) Push(id, name, description string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Notification{
		ID:          id,
		Name:        name,
		Description: description,
		Timestamp:   now,
	})
}

// Active returns the notifications still within their display window
// and prunes the rest.
func (s *Sink) Active(now time.Time) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var live []Notification
	for _, n := range s.entries {
		if now.Sub(n.Timestamp) < s.ttl {
			live = append(live, n)
		}
	}
	s.entries = live

	out := make([]Notification, len(live))
	copy(out, live)
	return out
}

// Dismiss removes the notification with the given timestamp.
func (s *Sink) Dismiss(timestamp time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.entries {
		if n.Timestamp.Equal(timestamp) {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
