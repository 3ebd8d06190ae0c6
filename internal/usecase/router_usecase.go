package usecase

import (
	"context"

	"vgb/internal/domain/entity"
)

// RouterUsecase switches between the top-level views.
type RouterUsecase interface {
	// Navigate guards the requested route for the current role, enters the
	// effective route and runs its entry action. The effective route is
	// returned even when the guard or the entry action reports an error.
	Navigate(ctx context.Context, route entity.Route) (entity.Route, error)

	Active() entity.Route

	// Permitted reports whether role may view route.
	Permitted(role entity.Role, route entity.Route) bool
}

// RouteTracker records the active route and hands out tickets so late
// results of superseded requests can be recognized and dropped.
type RouteTracker interface {
	Active() entity.Route
	Ticket() entity.RouteTicket
	Current(ticket entity.RouteTicket) bool
	Enter(route entity.Route) entity.RouteTicket
}

// ActionGate serializes actions per entity key. A second action on a held
// key is rejected rather than queued.
type ActionGate interface {
	Acquire(key string) (release func(), err error)
}
