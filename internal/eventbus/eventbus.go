// Package eventbus implements a small fan-out bus carrying schedule
// update events from ingest to observers such as the metrics collector.
package eventbus

import (
	"sync"

	"github.com/gridwatch/loadshed/core/events"
)

// Bus fans schedule updates out to all subscribers.
type Bus interface {
	Publish(events.ScheduleUpdate)
	Subscribe() <-chan events.ScheduleUpdate
	Unsubscribe(<-chan events.ScheduleUpdate)
	Close()
}

// ScheduleBus is the default Bus implementation using buffered fan-out
// channels. Delivery is best effort: a subscriber that falls behind
// drops updates instead of blocking the publisher.
type ScheduleBus struct {
	mu     sync.RWMutex
	subs   []chan events.ScheduleUpdate
	closed bool
}

// New creates a new ScheduleBus.
func New() *ScheduleBus { return &ScheduleBus{} }

// Publish sends the update to all subscribers without blocking.
func (b *ScheduleBus) Publish(e events.ScheduleUpdate) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel.
func (b *ScheduleBus) Subscribe() <-chan events.ScheduleUpdate {
	ch := make(chan events.ScheduleUpdate, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *ScheduleBus) Unsubscribe(sub <-chan events.ScheduleUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes all subscriber channels and clears the list.
func (b *ScheduleBus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.mu.Unlock()
}
