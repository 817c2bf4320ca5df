package game

import "sync"

// broadcaster fans Snapshot updates out to subscribers. Publishing never
// blocks: a subscriber that lags misses intermediate snapshots and catches up
// on the next one, which is fine because each snapshot is complete.
type broadcaster struct {
	mu     sync.Mutex
	subs   map[chan Snapshot]struct{}
	closed bool
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan Snapshot]struct{})}
}

func (b *broadcaster) subscribe() (ch chan Snapshot, cancel func()) {
	ch = make(chan Snapshot, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[ch] = struct{}{}
	}
	b.mu.Unlock()
	return ch, func() { b.unsubscribe(ch) }
}

// subscribeFirst registers a subscriber with snap queued as its first
// delivery. The queueing happens under the lock, so a racing close can never
// see a send on a closed channel; after close the channel comes back already
// closed and empty.
func (b *broadcaster) subscribeFirst(snap Snapshot) (ch chan Snapshot, cancel func()) {
	ch = make(chan Snapshot, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[ch] = struct{}{}
		ch <- snap // freshly made with room, never blocks
	}
	b.mu.Unlock()
	return ch, func() { b.unsubscribe(ch) }
}

func (b *broadcaster) unsubscribe(ch chan Snapshot) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

func (b *broadcaster) publish(snap Snapshot) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	b.mu.Unlock()
}

func (b *broadcaster) close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		for ch := range b.subs {
			delete(b.subs, ch)
			close(ch)
		}
	}
	b.mu.Unlock()
}
