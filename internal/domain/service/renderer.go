package service

import (
	"context"

	"vgb/internal/domain/entity"
)

// Renderer paints a view state on the rendering surface.
type Renderer interface {
	Render(ctx context.Context, view *entity.ViewState) error
}
