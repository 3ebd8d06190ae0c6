package impl

import (
	"context"
	"encoding/json"
	"testing"

	"vgb/internal/delivery/api/validator"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	mockUsecase "vgb/internal/mocks/usecase"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatcherServiceFixtures holds all test dependencies for dispatcher tests.
type dispatcherServiceFixtures struct {
	service   usecase.DispatcherUsecase
	session   *mockUsecase.MockSessionUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	calendar  *mockUsecase.MockCalendarUsecase
	favorites *mockUsecase.MockFavoriteUsecase
	reviews   *mockUsecase.MockReviewUsecase
	admin     *mockUsecase.MockAdminUsecase
	router    *mockUsecase.MockRouterUsecase
	settings  *mockUsecase.MockSettingsUsecase
	presenter *mockUsecase.MockPresenterUsecase
	view      *entity.ViewState
}

func createTestDispatcherService(t *testing.T) *dispatcherServiceFixtures {
	fx := &dispatcherServiceFixtures{
		session:   mockUsecase.NewMockSessionUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		calendar:  mockUsecase.NewMockCalendarUsecase(t),
		favorites: mockUsecase.NewMockFavoriteUsecase(t),
		reviews:   mockUsecase.NewMockReviewUsecase(t),
		admin:     mockUsecase.NewMockAdminUsecase(t),
		router:    mockUsecase.NewMockRouterUsecase(t),
		settings:  mockUsecase.NewMockSettingsUsecase(t),
		presenter: mockUsecase.NewMockPresenterUsecase(t),
		view:      &entity.ViewState{Version: 7},
	}
	// Every intent ends in exactly one render.
	fx.presenter.EXPECT().Render(mock.Anything).Return(fx.view, nil).Once()

	fx.service = NewDispatcherService(DispatcherServiceParams{
		Session:   fx.session,
		Catalog:   fx.catalog,
		Calendar:  fx.calendar,
		Favorites: fx.favorites,
		Reviews:   fx.reviews,
		Admin:     fx.admin,
		Router:    fx.router,
		Settings:  fx.settings,
		Presenter: fx.presenter,
		Validator: validator.New(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

func intent(kind entity.IntentKind, payload string) entity.Intent {
	i := entity.Intent{Type: kind}
	if payload != "" {
		i.Payload = json.RawMessage(payload)
	}

	return i
}

func TestDispatcherService_RejectsUninterpretableIntents(t *testing.T) {
	tests := []struct {
		name   string
		intent entity.Intent
	}{
		{name: "unknown kind", intent: intent("teleport", "")},
		{name: "malformed payload", intent: intent(entity.IntentNavigate, `{"route":`)},
		{name: "unknown route", intent: intent(entity.IntentNavigate, `{"route":"shop"}`)},
		{name: "missing game", intent: intent(entity.IntentToggleFavorite, `{}`)},
		{name: "bad endpoint", intent: intent(entity.IntentSetEndpoint, `{"baseURL":"nope"}`)},
		{name: "bad facet kind", intent: intent(entity.IntentToggleFacet, `{"kind":"studio","value":"x"}`)},
		{name: "rating bound", intent: intent(entity.IntentApplyFilters, `{"minRating":7}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatcherService(t)
			fx.presenter.EXPECT().Dismiss().Return().Maybe()
			fx.presenter.EXPECT().Report(mock.Anything).Return().Once()

			view, err := fx.service.Dispatch(context.Background(), tt.intent)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Same(t, fx.view, view)
		})
	}
}

func TestDispatcherService_OperationFailureBecomesNotice(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()
	denied := errors.Wrap(domainerrors.ErrAuthRequired, "favorites need a session")

	fx.presenter.EXPECT().Dismiss().Return().Once()
	fx.favorites.EXPECT().Toggle(ctx, "g1").Return(entity.NotFavorited, denied)
	fx.presenter.EXPECT().Report(denied).Return().Once()

	view, err := fx.service.Dispatch(ctx, intent(entity.IntentToggleFavorite, `{"gameId":"g1"}`))

	require.NoError(t, err)
	assert.Same(t, fx.view, view)
}

func TestDispatcherService_RoutesIntents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		intent entity.Intent
		expect func(fx *dispatcherServiceFixtures)
	}{
		{
			name:   "navigate",
			intent: intent(entity.IntentNavigate, `{"route":"calendar"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.router.EXPECT().Navigate(ctx, entity.RouteCalendar).Return(entity.RouteCalendar, nil)
			},
		},
		{
			name:   "apply filters",
			intent: intent(entity.IntentApplyFilters, `{"query":"moss","platforms":["Switch"],"releasedFrom":"2024-01-01","sort":"titleAsc"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.catalog.EXPECT().ApplyFilters(mock.MatchedBy(func(c entity.FilterCriteria) bool {
					return c.Query == "moss" && c.Platforms.Has("Switch") && c.ReleasedFrom != nil && c.Sort == entity.SortTitleAsc
				})).Return(nil)
			},
		},
		{
			name:   "toggle facet",
			intent: intent(entity.IntentToggleFacet, `{"kind":"genre","value":"RPG"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.catalog.EXPECT().ToggleFacet(entity.FacetGenre, "RPG").Return(nil)
			},
		},
		{
			name:   "clear filters",
			intent: intent(entity.IntentClearFilters, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.catalog.EXPECT().ClearFilters().Return(nil)
			},
		},
		{
			name:   "refresh catalog",
			intent: intent(entity.IntentRefreshCatalog, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.catalog.EXPECT().Refresh(ctx).Return(nil)
			},
		},
		{
			name:   "login greets the user",
			intent: intent(entity.IntentLogin, `{"email":"ada@example.com","password":"secret"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.session.EXPECT().Login(ctx, service.Credentials{Email: "ada@example.com", Password: "secret"}).Return(userSession(), nil)
				fx.presenter.EXPECT().Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Welcome back, ada"}).Return()
			},
		},
		{
			name:   "register",
			intent: intent(entity.IntentRegister, `{"username":"ada","email":"ada@example.com","password":"secret1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.session.EXPECT().Register(ctx, mock.Anything).Return(userSession(), nil)
				fx.presenter.EXPECT().Notify(mock.Anything).Return()
			},
		},
		{
			name:   "logout closes the detail",
			intent: intent(entity.IntentLogout, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.reviews.EXPECT().Close().Return()
				fx.session.EXPECT().Logout(ctx).Return(nil)
			},
		},
		{
			name:   "toggle favorite announces the state",
			intent: intent(entity.IntentToggleFavorite, `{"gameId":"g1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.favorites.EXPECT().Toggle(ctx, "g1").Return(entity.Favorited, nil)
				fx.presenter.EXPECT().Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Added to favorites"}).Return()
			},
		},
		{
			name:   "remove favorite",
			intent: intent(entity.IntentRemoveFavorite, `{"gameId":"g1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.favorites.EXPECT().Remove(ctx, "g1").Return(nil)
			},
		},
		{
			name:   "open game",
			intent: intent(entity.IntentOpenGame, `{"gameId":"g1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.reviews.EXPECT().Open(ctx, "g1").Return(&entity.GameDetail{}, nil)
			},
		},
		{
			name:   "close game",
			intent: intent(entity.IntentCloseGame, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.reviews.EXPECT().Close().Return()
			},
		},
		{
			name:   "post review",
			intent: intent(entity.IntentPostReview, `{"gameId":"g1","rating":4,"text":"Fun"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.reviews.EXPECT().Post(ctx, "g1", entity.ReviewDraft{Text: strPtr("Fun"), Rating: intPtr(4)}).Return(nil)
				fx.presenter.EXPECT().Notify(mock.Anything).Return()
			},
		},
		{
			name:   "edit review",
			intent: intent(entity.IntentEditReview, `{"reviewId":"r1","rating":9}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.reviews.EXPECT().Edit(ctx, "r1", entity.ReviewDraft{Rating: intPtr(9)}).Return(nil)
			},
		},
		{
			name:   "user deletes a review directly",
			intent: intent(entity.IntentDeleteReview, `{"reviewId":"r1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.session.EXPECT().Current().Return(userSession())
				fx.reviews.EXPECT().Delete(ctx, "r1").Return(nil)
			},
		},
		{
			name:   "admin deletes a review through moderation",
			intent: intent(entity.IntentDeleteReview, `{"reviewId":"r1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.session.EXPECT().Current().Return(adminSession())
				fx.admin.EXPECT().DeleteReview(ctx, "r1").Return(nil)
			},
		},
		{
			name:   "save game",
			intent: intent(entity.IntentSaveGame, `{"title":"Gamma","status":"Upcoming","releaseDate":"2025-03-01","platform":["PC"]}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.admin.EXPECT().SaveGame(ctx, "", mock.MatchedBy(func(d entity.GameDraft) bool {
					return d.Title == "Gamma" && d.ReleaseDate != nil && d.ReleaseDate.Day() == 1
				})).Return(nil)
				fx.presenter.EXPECT().Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Game saved"}).Return()
			},
		},
		{
			name:   "delete game",
			intent: intent(entity.IntentDeleteGame, `{"gameId":"g1"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.admin.EXPECT().DeleteGame(ctx, "g1").Return(nil)
			},
		},
		{
			name:   "load moderation",
			intent: intent(entity.IntentLoadModeration, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.admin.EXPECT().LoadModeration(ctx).Return(nil)
			},
		},
		{
			name:   "calendar previous",
			intent: intent(entity.IntentCalendarPrev, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.calendar.EXPECT().Previous().Return(entity.CalendarGrid{})
			},
		},
		{
			name:   "calendar next",
			intent: intent(entity.IntentCalendarNext, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.calendar.EXPECT().Next().Return(entity.CalendarGrid{})
			},
		},
		{
			name:   "calendar today",
			intent: intent(entity.IntentCalendarToday, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.calendar.EXPECT().Today().Return(entity.CalendarGrid{})
			},
		},
		{
			name:   "set endpoint",
			intent: intent(entity.IntentSetEndpoint, `{"baseURL":"https://games.example.com"}`),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.settings.EXPECT().SetEndpoint(ctx, "https://games.example.com").Return(nil)
			},
		},
		{
			name:   "dismiss notice",
			intent: intent(entity.IntentDismissNotice, ""),
			expect: func(fx *dispatcherServiceFixtures) {
				fx.presenter.EXPECT().Dismiss().Return().Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatcherService(t)
			tt.expect(fx)
			fx.presenter.EXPECT().Dismiss().Return().Once()

			view, err := fx.service.Dispatch(ctx, tt.intent)

			require.NoError(t, err)
			assert.Same(t, fx.view, view)
		})
	}
}
