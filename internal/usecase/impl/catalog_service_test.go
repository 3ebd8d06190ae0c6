package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	mockService "vgb/internal/mocks/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockService.MockCatalogAPI) {
	api := mockService.NewMockCatalogAPI(t)

	return NewCatalogService(api, newDiscardLogger()), api
}

func catalogFixture() []entity.Game {
	return []entity.Game{
		{ID: "g1", Title: "Alpha", Status: entity.StatusReleased, Platforms: []string{"PC"}, Genres: []string{"RPG"}, AverageRating: 4.5},
		{ID: "g2", Title: "Beta", Status: entity.StatusUpcoming, Platforms: []string{"Switch"}, Genres: []string{"Puzzle"}},
	}
}

func gameTitles(games []entity.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Title)
	}

	return out
}

func TestCatalogService_RefreshDerivesStateAndKeepsCriteria(t *testing.T) {
	srv, api := createTestCatalogService(t)
	ctx := context.Background()
	assert.False(t, srv.Loaded())

	api.EXPECT().ListGames(ctx).Return(catalogFixture(), nil).Once()
	require.NoError(t, srv.Refresh(ctx))

	assert.True(t, srv.Loaded())
	assert.Equal(t, entity.CatalogStats{Total: 2, Upcoming: 1, Released: 1}, srv.Stats())
	assert.Equal(t, []string{"PC", "Switch"}, srv.Facets().Platforms)
	assert.Equal(t, []string{"Alpha", "Beta"}, gameTitles(srv.Filtered()))

	srv.ApplyFilters(entity.FilterCriteria{Status: entity.StatusReleased})

	more := append(catalogFixture(), entity.Game{ID: "g3", Title: "Gamma", Status: entity.StatusReleased})
	api.EXPECT().ListGames(ctx).Return(more, nil).Once()
	require.NoError(t, srv.Refresh(ctx))

	assert.Equal(t, entity.StatusReleased, srv.Criteria().Status)
	assert.Equal(t, []string{"Alpha", "Gamma"}, gameTitles(srv.Filtered()))
}

func TestCatalogService_RefreshFailureKeepsPreviousCatalog(t *testing.T) {
	srv, api := createTestCatalogService(t)
	ctx := context.Background()

	api.EXPECT().ListGames(ctx).Return(catalogFixture(), nil).Once()
	require.NoError(t, srv.Refresh(ctx))

	api.EXPECT().ListGames(ctx).Return(nil, errors.WithStack(domainerrors.ErrNetwork)).Once()
	err := srv.Refresh(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.Len(t, srv.Games(), 2)
}

func TestCatalogService_SupersededRefreshIsDropped(t *testing.T) {
	srv, api := createTestCatalogService(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	api.EXPECT().ListGames(ctx).RunAndReturn(func(context.Context) ([]entity.Game, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release

			return []entity.Game{{ID: "old", Title: "Old"}}, nil
		}

		return []entity.Game{{ID: "new", Title: "New"}}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, srv.Refresh(ctx))
	}()
	<-started

	require.NoError(t, srv.Refresh(ctx))
	close(release)
	wg.Wait()

	assert.Equal(t, []string{"New"}, gameTitles(srv.Games()))
}

func TestCatalogService_RefreshGame(t *testing.T) {
	srv, api := createTestCatalogService(t)
	ctx := context.Background()

	api.EXPECT().ListGames(ctx).Return(catalogFixture(), nil)
	require.NoError(t, srv.Refresh(ctx))

	api.EXPECT().GetGame(ctx, "g2").
		Return(&entity.GameDetail{Game: entity.Game{ID: "g2", Title: "Beta", AverageRating: 3, TotalRatings: 1}}, nil)
	require.NoError(t, srv.RefreshGame(ctx, "g2"))

	game, ok := srv.Game("g2")
	require.True(t, ok)
	assert.InDelta(t, 3.0, game.AverageRating, 0.001)
	assert.Len(t, srv.Games(), 2)

	api.EXPECT().GetGame(ctx, "g9").Return(&entity.GameDetail{Game: entity.Game{ID: "g9", Title: "Zeta"}}, nil)
	require.NoError(t, srv.RefreshGame(ctx, "g9"))
	assert.Len(t, srv.Games(), 3)
}

func TestCatalogService_FacetsAndCalendarSource(t *testing.T) {
	srv, api := createTestCatalogService(t)
	ctx := context.Background()

	api.EXPECT().ListGames(ctx).Return(catalogFixture(), nil)
	require.NoError(t, srv.Refresh(ctx))

	// Before any filter action the calendar sees the whole catalog.
	assert.Len(t, srv.CalendarSource(), 2)

	filtered := srv.ToggleFacet(entity.FacetPlatform, "Switch")
	assert.Equal(t, []string{"Beta"}, gameTitles(filtered))
	assert.Equal(t, []string{"Beta"}, gameTitles(srv.CalendarSource()))

	filtered = srv.ToggleFacet(entity.FacetGenre, "RPG")
	assert.Empty(t, filtered)

	srv.ToggleFacet(entity.FacetPlatform, "Switch")
	assert.Equal(t, []string{"Alpha"}, gameTitles(srv.Filtered()))

	cleared := srv.ClearFilters()
	assert.Len(t, cleared, 2)
	assert.Empty(t, srv.Criteria().Platforms)
	assert.Len(t, srv.CalendarSource(), 2)
}

func TestCatalogService_CriteriaAreCopies(t *testing.T) {
	srv, api := createTestCatalogService(t)
	ctx := context.Background()

	api.EXPECT().ListGames(ctx).Return(catalogFixture(), nil)
	require.NoError(t, srv.Refresh(ctx))

	criteria := entity.FilterCriteria{Platforms: entity.NewStringSet("PC")}
	srv.ApplyFilters(criteria)
	criteria.Platforms.Toggle("Switch")

	assert.True(t, srv.Criteria().Platforms.Has("PC"))
	assert.False(t, srv.Criteria().Platforms.Has("Switch"))
}
