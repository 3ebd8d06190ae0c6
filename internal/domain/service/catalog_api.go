// Package service declares the external collaborators the client engine talks to.
package service

import (
	"context"

	"vgb/internal/domain/entity"
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the register form payload.
type Registration struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"omitempty,oneof=User Admin"`
}

// CatalogAPI is the remote Catalog API contract. Calls that need an
// authenticated session take the bearer token explicitly. Failures are
// returned as domain AppErrors carrying the server's message.
type CatalogAPI interface {
	// BaseURL returns the endpoint currently in use.
	BaseURL() string

	// SetBaseURL switches the endpoint for subsequent calls.
	SetBaseURL(baseURL string)

	// ResolveAsset turns an image reference into an absolute URL.
	ResolveAsset(ref string) string

	Login(ctx context.Context, creds Credentials) (*entity.Session, error)
	Register(ctx context.Context, reg Registration) (*entity.Session, error)

	ListGames(ctx context.Context) ([]entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameDetail, error)
	CreateGame(ctx context.Context, token string, draft entity.GameDraft) error
	UpdateGame(ctx context.Context, token, gameID string, draft entity.GameDraft) error
	DeleteGame(ctx context.Context, token, gameID string) error

	ListFavorites(ctx context.Context, token string) ([]entity.Game, error)
	// AddFavorite fails with a conflict error when the pair already exists.
	AddFavorite(ctx context.Context, token, gameID string) error
	RemoveFavorite(ctx context.Context, token, gameID string) error

	ListReviews(ctx context.Context, gameID string) ([]entity.Review, error)
	CreateReview(ctx context.Context, token, gameID string, draft entity.ReviewDraft) error
	UpdateReview(ctx context.Context, token, reviewID string, draft entity.ReviewDraft) error
	DeleteReview(ctx context.Context, token, reviewID string) error
}
