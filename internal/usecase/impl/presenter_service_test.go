package impl

import (
	"context"
	"testing"

	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	mockService "vgb/internal/mocks/service"
	mockUsecase "vgb/internal/mocks/usecase"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// presenterServiceFixtures holds all test dependencies for presenter tests.
// The mocks read the mutable fields below so each test only states what
// differs from an idle catalog view.
type presenterServiceFixtures struct {
	service   usecase.PresenterUsecase
	session   *mockUsecase.MockSessionUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	calendar  *mockUsecase.MockCalendarUsecase
	favorites *mockUsecase.MockFavoriteUsecase
	reviews   *mockUsecase.MockReviewUsecase
	admin     *mockUsecase.MockAdminUsecase
	router    *mockUsecase.MockRouterUsecase
	renderer  *mockService.MockRenderer

	current   entity.Session
	route     entity.Route
	games     []entity.Game
	favorite  entity.FavoriteSet
	opened    *entity.GameDetail
	renderErr error
	rendered  []*entity.ViewState
}

func createTestPresenterService(t *testing.T, session entity.Session) *presenterServiceFixtures {
	policy := newTestPolicy(t)
	api := mockService.NewMockCatalogAPI(t)

	fx := &presenterServiceFixtures{
		session:   mockUsecase.NewMockSessionUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		calendar:  mockUsecase.NewMockCalendarUsecase(t),
		favorites: mockUsecase.NewMockFavoriteUsecase(t),
		reviews:   mockUsecase.NewMockReviewUsecase(t),
		admin:     mockUsecase.NewMockAdminUsecase(t),
		router:    mockUsecase.NewMockRouterUsecase(t),
		renderer:  mockService.NewMockRenderer(t),
		current:   session,
		route:     entity.RouteCatalog,
		games: []entity.Game{
			{ID: "g1", Title: "Alpha", ImageURL: "/uploads/a.png", Platforms: []string{"PC"}},
			{ID: "g2", Title: "Beta", Platforms: []string{"Switch"}},
		},
		favorite: entity.NewFavoriteSet(nil),
	}

	fx.session.EXPECT().Current().RunAndReturn(func() entity.Session { return fx.current }).Maybe()
	fx.router.EXPECT().Active().RunAndReturn(func() entity.Route { return fx.route }).Maybe()
	fx.router.EXPECT().Permitted(mock.Anything, mock.Anything).
		RunAndReturn(func(role entity.Role, route entity.Route) bool {
			return policy.Allowed(role, service.RouteObject(route), service.ActionView)
		}).Maybe()
	fx.favorites.EXPECT().Favorites().RunAndReturn(func() entity.FavoriteSet { return fx.favorite }).Maybe()
	fx.catalog.EXPECT().Facets().Return(entity.Facets{Platforms: []string{"PC", "Switch"}}).Maybe()
	fx.catalog.EXPECT().Criteria().Return(entity.FilterCriteria{Platforms: entity.NewStringSet("PC")}).Maybe()
	fx.catalog.EXPECT().Stats().Return(entity.CatalogStats{Total: 2}).Maybe()
	fx.catalog.EXPECT().Filtered().RunAndReturn(func() []entity.Game { return fx.games }).Maybe()
	fx.reviews.EXPECT().Opened().RunAndReturn(func() (entity.GameDetail, bool) {
		if fx.opened == nil {
			return entity.GameDetail{}, false
		}

		return *fx.opened, true
	}).Maybe()
	api.EXPECT().BaseURL().Return("http://localhost:5000").Maybe()
	api.EXPECT().ResolveAsset(mock.Anything).RunAndReturn(func(ref string) string {
		if ref == "" {
			return "fallback.png"
		}

		return "http://localhost:5000" + ref
	}).Maybe()
	fx.renderer.EXPECT().Render(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, view *entity.ViewState) error {
			fx.rendered = append(fx.rendered, view)

			return fx.renderErr
		}).Maybe()

	fx.service = NewPresenterService(PresenterServiceParams{
		Session:   fx.session,
		Catalog:   fx.catalog,
		Calendar:  fx.calendar,
		Favorites: fx.favorites,
		Reviews:   fx.reviews,
		Admin:     fx.admin,
		Router:    fx.router,
		API:       api,
		Policy:    policy,
		Renderer:  fx.renderer,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestPresenterService_RenderGuestCatalog(t *testing.T) {
	fx := createTestPresenterService(t, entity.GuestSession())
	ctx := context.Background()

	view, err := fx.service.Render(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), view.Version)
	assert.Equal(t, entity.RouteCatalog, view.Route)
	assert.Equal(t, "Catalog", view.Title)
	assert.Equal(t, "http://localhost:5000", view.Endpoint)
	assert.Equal(t, entity.SessionView{Name: "Guest", Label: "Browsing", Role: entity.RoleGuest}, view.Session)
	assert.Equal(t, entity.NavView{}, view.Nav)
	require.Len(t, view.Catalog, 2)
	assert.Equal(t, entity.CardActionLogin, view.Catalog[0].Action)
	assert.Equal(t, "http://localhost:5000/uploads/a.png", view.Catalog[0].Image)
	assert.Equal(t, "fallback.png", view.Catalog[1].Image)
	assert.Equal(t, []entity.FacetChip{{Value: "PC", Selected: true}, {Value: "Switch"}}, view.Facets.Platforms)
	assert.Nil(t, view.Calendar)
	assert.Nil(t, view.Detail)

	next, err := fx.service.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next.Version)
	assert.Same(t, next, fx.service.Latest())
	assert.Len(t, fx.rendered, 2)
}

func TestPresenterService_CardActionsFollowRole(t *testing.T) {
	tests := []struct {
		name      string
		session   entity.Session
		action    entity.CardAction
		nav       entity.NavView
		favorited bool
	}{
		{name: "user", session: userSession(), action: entity.CardActionFavorite, nav: entity.NavView{Favorites: true}, favorited: true},
		{name: "admin", session: adminSession(), action: entity.CardActionAdmin, nav: entity.NavView{Admin: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPresenterService(t, tt.session)
			if tt.favorited {
				fx.favorite = entity.NewFavoriteSet([]entity.Game{{ID: "g1"}})
			}

			view, err := fx.service.Render(context.Background())
			require.NoError(t, err)

			assert.True(t, view.Session.LoggedIn)
			assert.Equal(t, tt.session.User.Username, view.Session.Name)
			assert.Equal(t, tt.nav, view.Nav)
			assert.Equal(t, tt.action, view.Catalog[0].Action)
			assert.Equal(t, tt.favorited, view.Catalog[0].Favorited)
			assert.False(t, view.Catalog[1].Favorited)
		})
	}
}

func TestPresenterService_RouteSections(t *testing.T) {
	t.Run("calendar", func(t *testing.T) {
		fx := createTestPresenterService(t, entity.GuestSession())
		fx.route = entity.RouteCalendar
		fx.calendar.EXPECT().Recompute().Return(entity.CalendarGrid{Title: "June 2024"})

		view, err := fx.service.Render(context.Background())
		require.NoError(t, err)

		require.NotNil(t, view.Calendar)
		assert.Equal(t, "June 2024", view.Calendar.Title)
		assert.Equal(t, "Release Calendar", view.Title)
	})

	t.Run("favorites", func(t *testing.T) {
		fx := createTestPresenterService(t, userSession())
		fx.route = entity.RouteFavorites
		fx.favorite = entity.NewFavoriteSet([]entity.Game{{ID: "g2", Title: "Beta"}})

		view, err := fx.service.Render(context.Background())
		require.NoError(t, err)

		require.Len(t, view.Favorites, 1)
		assert.True(t, view.Favorites[0].Favorited)
		assert.Equal(t, entity.CardActionFavorite, view.Favorites[0].Action)
	})

	t.Run("admin", func(t *testing.T) {
		fx := createTestPresenterService(t, adminSession())
		fx.route = entity.RouteAdmin
		fx.admin.EXPECT().Games().Return(fx.games)
		fx.admin.EXPECT().Moderation().Return([]entity.ModerationEntry{{GameTitle: "Alpha"}}, true)

		view, err := fx.service.Render(context.Background())
		require.NoError(t, err)

		require.NotNil(t, view.Admin)
		assert.Len(t, view.Admin.Games, 2)
		assert.True(t, view.Admin.ModerationLoaded)
		assert.Len(t, view.Admin.Moderation, 1)
	})
}

func TestPresenterService_DetailAffordances(t *testing.T) {
	tests := []struct {
		name          string
		session       entity.Session
		composer      entity.ComposerState
		ownCanEdit    bool
		otherCanClear bool
		canFavor      bool
	}{
		{name: "user", session: userSession(), composer: entity.ComposerAlreadyPosted, ownCanEdit: true, canFavor: true},
		{name: "admin", session: adminSession(), composer: entity.ComposerAdmin, otherCanClear: true},
		{name: "guest", session: entity.GuestSession(), composer: entity.ComposerLoginRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPresenterService(t, tt.session)
			fx.opened = &entity.GameDetail{
				Game: entity.Game{ID: "g1", Title: "Alpha"},
				Reviews: []entity.Review{
					{ID: "r1", Author: entity.ReviewAuthor{ID: "u1", Username: "ada"}},
					{ID: "r2", Author: entity.ReviewAuthor{ID: "u2"}},
				},
			}
			fx.reviews.EXPECT().Composer("g1").Return(tt.composer)

			view, err := fx.service.Render(context.Background())
			require.NoError(t, err)

			require.NotNil(t, view.Detail)
			assert.Equal(t, tt.composer, view.Detail.Composer)
			assert.Equal(t, tt.canFavor, view.Detail.CanFavor)
			require.Len(t, view.Detail.Reviews, 2)

			own, other := view.Detail.Reviews[0], view.Detail.Reviews[1]
			assert.Equal(t, "ada", own.Author)
			assert.Equal(t, "User", other.Author)
			assert.Equal(t, tt.ownCanEdit, own.Mine)
			assert.Equal(t, tt.ownCanEdit, own.CanEdit)
			assert.False(t, other.CanEdit)
			assert.Equal(t, tt.otherCanClear, other.CanDelete)
		})
	}
}

func TestPresenterService_Notices(t *testing.T) {
	fx := createTestPresenterService(t, entity.GuestSession())
	ctx := context.Background()

	fx.service.Report(errors.Wrap(domainerrors.ErrAuthRequired, "favorites need a session"))
	view, err := fx.service.Render(ctx)
	require.NoError(t, err)

	require.NotNil(t, view.Notice)
	assert.Equal(t, entity.NoticeError, view.Notice.Level)
	assert.Equal(t, "AUTH_REQUIRED", view.Notice.Code)
	require.NotNil(t, view.Prompt)
	assert.Equal(t, "Please log in to continue", view.Prompt.Reason)

	fx.service.Dismiss()
	fx.service.Report(errors.New("boom"))
	view, err = fx.service.Render(ctx)
	require.NoError(t, err)

	assert.Equal(t, "INTERNAL_ERROR", view.Notice.Code)
	assert.Equal(t, "Something went wrong", view.Notice.Message)
	assert.Nil(t, view.Prompt)

	fx.service.Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Review posted"})
	fx.service.Report(nil)
	view, err = fx.service.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Review posted", view.Notice.Message)
}

func TestPresenterService_RendererFailure(t *testing.T) {
	fx := createTestPresenterService(t, entity.GuestSession())
	fx.renderErr = errors.New("surface gone")

	view, err := fx.service.Render(context.Background())

	require.Error(t, err)
	require.NotNil(t, view)
	assert.Same(t, view, fx.service.Latest())
}
