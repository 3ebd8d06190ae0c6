// Package render fans rendered view states out to connected surfaces.
package render

import (
	"context"
	"log/slog"
	"sync"

	"vgb/internal/domain/entity"
)

// subscriber holds at most one pending view; a newer view replaces an
// unread one so slow surfaces skip straight to the latest state.
type subscriber struct {
	send chan *entity.ViewState
}

// Broadcaster implements service.Renderer by keeping the latest view and
// pushing it to every subscriber.
type Broadcaster struct {
	logger *slog.Logger

	mu          sync.RWMutex
	latest      *entity.ViewState
	subscribers map[*subscriber]struct{}
}

// NewBroadcaster creates a broadcaster with no subscribers.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger:      logger,
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Render records the view and offers it to every subscriber without blocking.
// Views older than the one already held are ignored.
func (b *Broadcaster) Render(_ context.Context, view *entity.ViewState) error {
	if view == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.latest != nil && view.Version != 0 && view.Version < b.latest.Version {
		return nil
	}
	b.latest = view

	for sub := range b.subscribers {
		offer(sub.send, view)
	}

	return nil
}

// Latest returns the most recent view, or nil before the first render.
func (b *Broadcaster) Latest() *entity.ViewState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.latest
}

// Subscribe registers a surface. The channel first carries the latest view
// if there is one. cancel unregisters and closes the channel; it is safe to
// call more than once.
func (b *Broadcaster) Subscribe() (views <-chan *entity.ViewState, cancel func()) {
	sub := &subscriber{send: make(chan *entity.ViewState, 1)}

	b.mu.Lock()
	b.subscribers[sub] = struct{}{}
	if b.latest != nil {
		sub.send <- b.latest
	}
	count := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug("Surface subscribed", slog.Int("subscribers", count))

	var once sync.Once
	cancel = func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, sub)
			close(sub.send)
			b.mu.Unlock()
		})
	}

	return sub.send, cancel
}

// Subscribers returns the number of connected surfaces.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscribers)
}

func offer(ch chan *entity.ViewState, view *entity.ViewState) {
	for {
		select {
		case ch <- view:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
