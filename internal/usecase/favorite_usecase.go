package usecase

import (
	"context"

	"vgb/internal/domain/entity"
)

// FavoriteUsecase coordinates the user's favorites against a backend that
// only offers add and remove.
type FavoriteUsecase interface {
	// Toggle flips the favorite state of a game and returns the new state.
	Toggle(ctx context.Context, gameID string) (entity.FavoriteState, error)

	// AttemptAdd is the first toggle step. It reports false with a nil error
	// when the backend says the pair already exists.
	AttemptAdd(ctx context.Context, token, gameID string) (bool, error)

	// Compensate is the second toggle step, run when AttemptAdd found an
	// existing pair: it removes the favorite to complete the toggle.
	Compensate(ctx context.Context, token, gameID string) error

	Remove(ctx context.Context, gameID string) error

	// Refresh reloads the favorites list. The result is dropped when the
	// route changed while the request was outstanding.
	Refresh(ctx context.Context) error

	Favorites() entity.FavoriteSet

	// Stale reports whether a mutation happened since the last refresh.
	Stale() bool
}
