package usecase

import (
	"context"

	"vgb/internal/domain/entity"
)

// CatalogUsecase is the in-memory catalog cache and its derived state:
// facet vocabularies, counters and the filtered list.
type CatalogUsecase interface {
	// Refresh replaces the catalog wholesale and re-derives everything from
	// it. The current criteria and facet selection are kept.
	Refresh(ctx context.Context) error

	// RefreshGame replaces one catalog entry after a mutation changed its
	// aggregate rating.
	RefreshGame(ctx context.Context, gameID string) error

	Loaded() bool
	Games() []entity.Game
	Game(gameID string) (entity.Game, bool)
	Facets() entity.Facets
	Stats() entity.CatalogStats

	Criteria() entity.FilterCriteria
	Filtered() []entity.Game

	ApplyFilters(criteria entity.FilterCriteria) []entity.Game
	ToggleFacet(kind entity.FacetKind, value string) []entity.Game
	ClearFilters() []entity.Game

	// CalendarSource is the list the calendar projects: the filtered list
	// once any filter was applied, the full catalog before that.
	CalendarSource() []entity.Game
}
