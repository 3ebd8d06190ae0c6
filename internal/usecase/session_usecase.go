// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vgb/internal/domain/entity"
	"vgb/internal/domain/service"
)

// SessionListener is notified after the session changed. It runs on the
// goroutine that caused the change.
type SessionListener func(ctx context.Context, prev, next entity.Session)

// SessionUsecase owns the identity the client acts as and its persisted slots.
type SessionUsecase interface {
	// Restore reads the persisted token and profile. Missing, orphaned,
	// unreadable or expired state restores as Guest and is cleared.
	Restore(ctx context.Context) (entity.Session, error)

	// Adopt makes session current and persists it: both slots or neither.
	Adopt(ctx context.Context, session entity.Session) error

	Login(ctx context.Context, creds service.Credentials) (entity.Session, error)
	Register(ctx context.Context, reg service.Registration) (entity.Session, error)

	// Logout clears the session and its persisted slots.
	Logout(ctx context.Context) error

	Current() entity.Session

	// OnChange registers a listener for session changes.
	OnChange(listener SessionListener)
}
