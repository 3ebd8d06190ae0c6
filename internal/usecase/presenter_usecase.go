package usecase

import (
	"context"

	"vgb/internal/domain/entity"
)

// PresenterUsecase composes the view state and hands it to the renderer.
type PresenterUsecase interface {
	Render(ctx context.Context) (*entity.ViewState, error)

	// Latest returns the last rendered view, or nil before the first render.
	Latest() *entity.ViewState

	// Report turns an operation error into a notice on the next render.
	Report(err error)
	Notify(notice entity.Notice)
	Dismiss()
}

// DispatcherUsecase routes intents to component operations and re-renders.
type DispatcherUsecase interface {
	// Dispatch runs the intent. Operation failures are reported as notices
	// in the returned view; the error is only set for intents that could
	// not be interpreted.
	Dispatch(ctx context.Context, intent entity.Intent) (*entity.ViewState, error)
}
