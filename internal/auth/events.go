package auth

import (
	"sync"
	"time"
)

type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// Event is a session-change notification: a session came into existence or
// was destroyed. Subscribers observe sessions read-only.
type Event struct {
	Type   EventType
	UserID string
	At     time.Time
}

// Feed fans session-change events out to subscribers. Delivery is
// best-effort: a subscriber that stops draining loses events rather than
// blocking sign-in/sign-out.
type Feed struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned func releases the
// subscription and closes the channel.
func (f *Feed) Subscribe() (<-chan Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan Event, 64)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (f *Feed) Publish(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- ev:
		default:
			// subscriber is not draining, drop
		}
	}
}
