// Package impl contains the application-specific business rules implementations.
package impl

import (
	"sync"

	"vgb/internal/domain/entity"
	"vgb/internal/usecase"
)

// routeTracker implements the RouteTracker interface.
type routeTracker struct {
	mu     sync.RWMutex
	ticket entity.RouteTicket
}

// NewRouteTracker starts on the catalog route.
func NewRouteTracker() usecase.RouteTracker {
	return &routeTracker{ticket: entity.RouteTicket{Route: entity.RouteCatalog}}
}

func (t *routeTracker) Active() entity.Route {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.ticket.Route
}

func (t *routeTracker) Ticket() entity.RouteTicket {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.ticket
}

// Current reports whether no route change happened since ticket was issued.
func (t *routeTracker) Current(ticket entity.RouteTicket) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.ticket == ticket
}

// Enter activates route. Re-entering the active route still issues a new
// ticket, so results requested before the re-entry are dropped.
func (t *routeTracker) Enter(route entity.Route) entity.RouteTicket {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ticket = entity.RouteTicket{Route: route, Generation: t.ticket.Generation + 1}

	return t.ticket
}
