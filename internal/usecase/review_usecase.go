package usecase

import (
	"context"

	"vgb/internal/domain/entity"
)

// ReviewUsecase governs composing, editing and deleting reviews. Every
// successful mutation refreshes the game's review list and then its catalog
// entry before returning.
type ReviewUsecase interface {
	// Open loads a game with its reviews into the detail view.
	Open(ctx context.Context, gameID string) (*entity.GameDetail, error)
	Close()
	Opened() (entity.GameDetail, bool)

	// Fetch reloads the review list of a game and records it as the most
	// recent one.
	Fetch(ctx context.Context, gameID string) ([]entity.Review, error)

	// Reviews returns the most recently fetched list for the game.
	Reviews(gameID string) ([]entity.Review, bool)

	// Composer tells what the review area offers for the game.
	Composer(gameID string) entity.ComposerState

	// CanCompose checks the preconditions of a new review without posting.
	CanCompose(ctx context.Context, gameID string) error

	Post(ctx context.Context, gameID string, draft entity.ReviewDraft) error
	Edit(ctx context.Context, reviewID string, draft entity.ReviewDraft) error
	Delete(ctx context.Context, reviewID string) error
}
