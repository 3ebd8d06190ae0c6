package usecase

import (
	"context"

	"vgb/internal/domain/entity"
)

// AdminUsecase backs the admin view: game records and review moderation.
type AdminUsecase interface {
	// Enter refreshes what the admin view shows. Moderation is only reloaded
	// when it was loaded before.
	Enter(ctx context.Context) error

	// Games lists the catalog ordered by title.
	Games() []entity.Game

	// SaveGame creates a game when gameID is empty and updates it otherwise.
	SaveGame(ctx context.Context, gameID string, draft entity.GameDraft) error
	DeleteGame(ctx context.Context, gameID string) error

	// LoadModeration gathers every review of every game, newest first.
	// Games whose reviews cannot be fetched are skipped.
	LoadModeration(ctx context.Context) error
	Moderation() ([]entity.ModerationEntry, bool)
	DeleteReview(ctx context.Context, reviewID string) error
}
