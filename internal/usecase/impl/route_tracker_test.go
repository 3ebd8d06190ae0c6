package impl

import (
	"sync"
	"testing"

	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTracker_TicketsGoStaleOnEveryEntry(t *testing.T) {
	tracker := NewRouteTracker()
	assert.Equal(t, entity.RouteCatalog, tracker.Active())

	ticket := tracker.Ticket()
	assert.True(t, tracker.Current(ticket))

	tracker.Enter(entity.RouteCatalog)
	assert.False(t, tracker.Current(ticket), "re-entering the same route supersedes older tickets")

	latest := tracker.Enter(entity.RouteFavorites)
	assert.True(t, tracker.Current(latest))
	assert.Equal(t, entity.RouteFavorites, tracker.Active())
}

func TestActionGate(t *testing.T) {
	gate := NewActionGate()

	release, err := gate.Acquire(favoriteKey("g1"))
	require.NoError(t, err)

	_, err = gate.Acquire(favoriteKey("g1"))
	assert.ErrorIs(t, err, domainerrors.ErrActionInFlight)

	other, err := gate.Acquire(reviewKey("g1"))
	require.NoError(t, err, "keys of different entities do not collide")
	other()

	release()
	release()

	again, err := gate.Acquire(favoriteKey("g1"))
	require.NoError(t, err)
	again()
}

func TestActionGate_ConcurrentAcquireAdmitsOne(t *testing.T) {
	gate := NewActionGate()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := gate.Acquire(gameKey("g1")); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, admitted)
}
