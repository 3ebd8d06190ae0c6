package impl

import (
	"sync"

	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
)

// Keys of the action gate. One key per entity an action mutates.
func favoriteKey(gameID string) string { return "favorite:" + gameID }
func reviewKey(reviewID string) string { return "review:" + reviewID }
func reviewPostKey(gameID string) string { return "review-post:" + gameID }
func gameKey(gameID string) string { return "game:" + gameID }

// actionGate implements the ActionGate interface.
type actionGate struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewActionGate creates an empty gate.
func NewActionGate() usecase.ActionGate {
	return &actionGate{held: make(map[string]struct{})}
}

// Acquire holds key until release is called. release is idempotent.
func (g *actionGate) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, errors.Wrapf(domainerrors.ErrActionInFlight, "action already running for %s", key)
	}
	g.held[key] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
