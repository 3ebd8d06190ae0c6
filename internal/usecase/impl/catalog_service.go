package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/catalog"
	"vgb/internal/domain/entity"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	api    service.CatalogAPI
	logger *slog.Logger

	mu       sync.RWMutex
	loaded   bool
	games    []entity.Game
	facets   entity.Facets
	stats    entity.CatalogStats
	criteria entity.FilterCriteria
	filtered []entity.Game
	// everFiltered flips on the first filter action and never back.
	everFiltered bool
	// fetchSeq orders overlapping refreshes so an older response never
	// overwrites a newer one.
	fetchSeq   uint64
	appliedSeq uint64
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(api service.CatalogAPI, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		api:      api,
		logger:   logger,
		criteria: entity.FilterCriteria{}.Cleared(),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Refresh(ctx context.Context) error {
	srv.mu.Lock()
	srv.fetchSeq++
	seq := srv.fetchSeq
	srv.mu.Unlock()

	games, err := srv.api.ListGames(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load games")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if seq < srv.appliedSeq {
		srv.log(ctx).Debug("Dropping superseded catalog response", slog.Uint64("seq", seq))

		return nil
	}
	srv.appliedSeq = seq
	srv.replace(games)
	srv.log(ctx).Debug("Catalog refreshed", slog.Int("games", len(games)), slog.Int("filtered", len(srv.filtered)))

	return nil
}

func (srv *catalogService) RefreshGame(ctx context.Context, gameID string) error {
	detail, err := srv.api.GetGame(ctx, gameID)
	if err != nil {
		return errors.Wrapf(err, "failed to reload game %s", gameID)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	games := slices.Clone(srv.games)
	idx := slices.IndexFunc(games, func(g entity.Game) bool { return g.ID == gameID })
	if idx < 0 {
		games = append(games, detail.Game)
	} else {
		games[idx] = detail.Game
	}
	srv.replace(games)

	return nil
}

// replace swaps the catalog and re-derives facets, stats and the filtered
// list. Criteria are kept. Callers hold mu.
func (srv *catalogService) replace(games []entity.Game) {
	srv.loaded = true
	srv.games = games
	srv.facets = catalog.BuildFacets(games)
	srv.stats = catalog.Stats(games)
	srv.filtered = catalog.Filter(games, srv.criteria)
}

func (srv *catalogService) Loaded() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.loaded
}

func (srv *catalogService) Games() []entity.Game {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.games)
}

func (srv *catalogService) Game(gameID string) (entity.Game, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, g := range srv.games {
		if g.ID == gameID {
			return g, true
		}
	}

	return entity.Game{}, false
}

func (srv *catalogService) Facets() entity.Facets {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.facets
}

func (srv *catalogService) Stats() entity.CatalogStats {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.stats
}

func (srv *catalogService) Criteria() entity.FilterCriteria {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.criteria.Clone()
}

func (srv *catalogService) Filtered() []entity.Game {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.filtered)
}

func (srv *catalogService) ApplyFilters(criteria entity.FilterCriteria) []entity.Game {
	return srv.update(func(entity.FilterCriteria) entity.FilterCriteria {
		return criteria.Clone()
	})
}

func (srv *catalogService) ToggleFacet(kind entity.FacetKind, value string) []entity.Game {
	return srv.update(func(c entity.FilterCriteria) entity.FilterCriteria {
		if kind == entity.FacetGenre {
			if c.Genres == nil {
				c.Genres = entity.StringSet{}
			}
			c.Genres.Toggle(value)
		} else {
			if c.Platforms == nil {
				c.Platforms = entity.StringSet{}
			}
			c.Platforms.Toggle(value)
		}

		return c
	})
}

func (srv *catalogService) ClearFilters() []entity.Game {
	return srv.update(entity.FilterCriteria.Cleared)
}

func (srv *catalogService) CalendarSource() []entity.Game {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.everFiltered {
		return slices.Clone(srv.filtered)
	}

	return slices.Clone(srv.games)
}

// update applies a criteria change to a private copy and re-filters.
func (srv *catalogService) update(change func(entity.FilterCriteria) entity.FilterCriteria) []entity.Game {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.criteria = change(srv.criteria.Clone())
	srv.everFiltered = true
	srv.filtered = catalog.Filter(srv.games, srv.criteria)

	return slices.Clone(srv.filtered)
}
